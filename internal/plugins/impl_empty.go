package plugins

import (
	"context"

	"github.com/xab-mack/inklint/internal/analysis"
	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
)

// implEmpty flags contract impl blocks that declare no functions
type implEmpty struct{}

func (d *implEmpty) Meta() model.RuleMeta {
	return model.RuleMeta{ID: "INK-IMPL-EMPTY", Title: "Contract impl block declares no functions", Severity: model.SeverityLow, Tags: []string{"impl"}}
}

func (d *implEmpty) Analyze(ctx context.Context, unit *hir.Context, req model.LintRequest) ([]model.Finding, error) {
	items := analysis.ExpandUnnamedConsts(unit, unit.TopLevel())
	id, ok := analysis.FindContractImplID(unit, items)
	if !ok {
		return nil, nil
	}
	it := unit.Item(id)
	if it == nil || it.Impl == nil || len(it.Impl.Fns) > 0 {
		return nil, nil
	}
	f := findingAt(unit, d.Meta(), it.Span, 0.7,
		"Contract impl block has no constructors or messages",
		"A contract without callable entry points cannot be instantiated or invoked once deployed.",
		"Declare at least one #[ink(constructor)] and one #[ink(message)] function.")
	return []model.Finding{f}, nil
}
