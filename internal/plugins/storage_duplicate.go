package plugins

import (
	"context"

	"github.com/xab-mack/inklint/internal/analysis"
	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
)

// storageDuplicate flags modules declaring more than one storage struct
type storageDuplicate struct{}

func (d *storageDuplicate) Meta() model.RuleMeta {
	return model.RuleMeta{ID: "INK-STORAGE-DUPLICATE", Title: "More than one storage struct", Severity: model.SeverityHigh, Tags: []string{"storage"}}
}

func (d *storageDuplicate) Analyze(ctx context.Context, unit *hir.Context, req model.LintRequest) ([]model.Finding, error) {
	var findings []model.Finding
	seen := false
	for _, id := range analysis.ExpandUnnamedConsts(unit, unit.TopLevel()) {
		it := unit.Item(id)
		if it == nil || it.Kind != hir.KindStruct || !analysis.HasStorageMarker(unit, id) {
			continue
		}
		if !seen {
			seen = true
			continue
		}
		findings = append(findings, findingAt(unit, d.Meta(), it.Span, 0.85,
			"Struct "+it.Name+" also carries the storage annotation",
			"A contract holds exactly one storage struct; additional annotated structs shadow the real state type.",
			"Keep a single #[ink(storage)] struct and remove the annotation from the others."))
	}
	return findings, nil
}
