package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xab-mack/inklint/internal/model"
)

type modelT struct {
	findings []model.Finding
	cursor   int
}

func initialModel(findings []model.Finding) modelT { return modelT{findings: findings} }

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.findings)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Findings (%d)\n\n", len(m.findings))
	for i, f := range m.findings {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s [%s] %s:%d %s\n", marker, f.RuleID, f.Severity, f.File, f.StartLine, f.Message)
	}
	if len(m.findings) > 0 {
		f := m.findings[m.cursor]
		if f.Rationale != "" {
			fmt.Fprintf(&b, "\n%s\n", f.Rationale)
		}
	}
	return b.String()
}

// Run launches a minimal TUI list view
func Run(findings []model.Finding) error {
	p := tea.NewProgram(initialModel(findings))
	_, err := p.Run()
	return err
}
