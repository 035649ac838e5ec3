package plugins

import (
	"context"

	"github.com/xab-mack/inklint/internal/analysis"
	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
)

// implMissing flags contracts whose type resolves but which have no inherent
// impl block for it
type implMissing struct{}

func (d *implMissing) Meta() model.RuleMeta {
	return model.RuleMeta{ID: "INK-IMPL-MISSING", Title: "Contract type has no inherent impl", Severity: model.SeverityMedium, Tags: []string{"impl"}}
}

func (d *implMissing) Analyze(ctx context.Context, unit *hir.Context, req model.LintRequest) ([]model.Finding, error) {
	items := analysis.ExpandUnnamedConsts(unit, unit.TopLevel())
	ty, ok := analysis.FindContractType(unit, items)
	if !ok {
		// Nothing implements the contract environment trait; either this is
		// not a contract module or the expansion failed earlier. Not ours to
		// report.
		return nil, nil
	}
	if _, ok := analysis.FindContractImplID(unit, items); ok {
		return nil, nil
	}
	f := findingAt(unit, d.Meta(), hir.Span{}, 0.8,
		"No inherent impl block found for contract type "+ty.Path,
		"Hand-written contract methods live in the inherent impl; only generated trait impls were found for this type.",
		"Add an impl block for the contract struct with its constructors and messages.")
	return []model.Finding{f}, nil
}
