package plugins

import (
	"context"

	"github.com/xab-mack/inklint/internal/analysis"
	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
)

// storageMissing flags modules with no storage-marked struct
type storageMissing struct{}

func (d *storageMissing) Meta() model.RuleMeta {
	return model.RuleMeta{ID: "INK-STORAGE-MISSING", Title: "Contract module has no storage struct", Severity: model.SeverityHigh, Tags: []string{"storage"}}
}

func (d *storageMissing) Analyze(ctx context.Context, unit *hir.Context, req model.LintRequest) ([]model.Finding, error) {
	items := analysis.ExpandUnnamedConsts(unit, unit.TopLevel())
	if _, ok := analysis.FindStorageStruct(unit, items); ok {
		return nil, nil
	}
	f := findingAt(unit, d.Meta(), hir.Span{}, 0.9,
		"No struct in this module carries the storage annotation",
		"Without a #[ink(storage)] struct the module has no persistent contract state; the expansion is likely incomplete or the annotation was removed.",
		"Annotate exactly one struct with #[ink(storage)].")
	return []model.Finding{f}, nil
}
