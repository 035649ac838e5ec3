package plugins

import (
	"context"
	"runtime"
	"sync"

	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
)

// Detector is one lint rule over a single expanded contract module.
type Detector interface {
	Meta() model.RuleMeta
	Analyze(ctx context.Context, unit *hir.Context, req model.LintRequest) ([]model.Finding, error)
}

type Registry struct{ detectors []Detector }

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(d Detector) { r.detectors = append(r.detectors, d) }

func (r *Registry) RegisterBuiltin() {
	r.Register(&storageMissing{})
	r.Register(&storageDuplicate{})
	r.Register(&implMissing{})
	r.Register(&implEmpty{})
}

func (r *Registry) Detectors() []Detector { return r.detectors }

// Run executes every detector against one unit with bounded parallelism.
// Detector errors drop that detector's findings rather than failing the run.
func (r *Registry) Run(ctx context.Context, unit *hir.Context, req model.LintRequest) []model.Finding {
	cpu := runtime.NumCPU()
	if cpu < 2 {
		cpu = 2
	}
	type res struct{ fs []model.Finding }
	ch := make(chan res, len(r.detectors))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cpu)
	for _, d := range r.detectors {
		d := d
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			fs, err := d.Analyze(ctx, unit, req)
			if err != nil {
				ch <- res{}
				return
			}
			ch <- res{fs: fs}
		}()
	}
	wg.Wait()
	close(ch)
	var out []model.Finding
	for r := range ch {
		out = append(out, r.fs...)
	}
	return out
}
