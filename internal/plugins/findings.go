package plugins

import (
	"os"

	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
	"github.com/xab-mack/inklint/internal/util"
)

// findingAt builds a finding anchored at a span within the unit's source.
// Snippet extraction is best-effort; a missing source file leaves it empty.
func findingAt(unit *hir.Context, meta model.RuleMeta, span hir.Span, conf float64, msg, rationale, remediation string) model.Finding {
	file := span.File
	if file == "" {
		file = unit.Source()
	}
	start, end := span.StartLine, span.EndLine
	if start < 1 {
		start, end = 1, 1
	}
	snippet := ""
	if b, err := os.ReadFile(file); err == nil {
		snippet = util.ExtractSnippet(string(b), start, end, 6)
	}
	return model.Finding{
		RuleID:      meta.ID,
		Severity:    meta.Severity,
		Confidence:  conf,
		Module:      unit.Module(),
		File:        file,
		StartLine:   start,
		EndLine:     end,
		Snippet:     snippet,
		Message:     msg,
		Rationale:   rationale,
		Remediation: remediation,
		Fingerprint: util.Fingerprint(meta.ID, unit.Module(), file, start, end),
	}
}
