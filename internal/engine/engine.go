package engine

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/xab-mack/inklint/internal/cache"
	"github.com/xab-mack/inklint/internal/config"
	"github.com/xab-mack/inklint/internal/hir"
	"github.com/xab-mack/inklint/internal/model"
	"github.com/xab-mack/inklint/internal/plugins"
)

// rulesetTag versions the builtin rule set for the findings cache.
const rulesetTag = "inklint-rules-v1"

type Engine struct {
	registry *plugins.Registry
}

func New() *Engine {
	reg := plugins.NewRegistry()
	reg.RegisterBuiltin()
	return &Engine{registry: reg}
}

// Lint discovers expanded-module dumps under the request path, runs every
// registered rule against each unit, and applies config filters. Unreadable
// or malformed dumps are skipped rather than failing the whole run.
func (e *Engine) Lint(ctx context.Context, req model.LintRequest) (*model.LintResult, error) {
	start := time.Now()
	dumps, err := discoverDumps(req.Path)
	if err != nil {
		return nil, err
	}
	cfgDir := req.ConfigPath
	if cfgDir == "" {
		cfgDir = req.Path
	}
	cfg, _, _ := config.Load(cfgDir)

	var findings []model.Finding
	for _, path := range dumps {
		if ctx.Err() != nil {
			// budget exhausted; report what was gathered so far
			break
		}
		unitFindings, err := e.lintUnit(ctx, path, req)
		if err != nil {
			continue
		}
		findings = append(findings, unitFindings...)
	}
	findings = applyIgnores(findings, cfg)
	findings = filterBySeverity(findings, cfg)
	findings = filterByRules(findings, cfg)
	elapsed := time.Since(start)
	return &model.LintResult{Findings: findings, Units: len(dumps), Elapsed: elapsed}, nil
}

// lintUnit runs the rule set over one dump. Results are cached on disk keyed
// by rule-set version and dump content, so unchanged contracts re-lint for
// free.
func (e *Engine) lintUnit(ctx context.Context, path string, req model.LintRequest) ([]model.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dump %s", path)
	}
	key := cache.Key(rulesetTag, hir.DumpTag, string(data))
	if b, ok := cache.Load(key); ok {
		var cached []model.Finding
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, nil
		}
	}
	unit, err := hir.ParseCached(data)
	if err != nil {
		return nil, err
	}
	findings := e.registry.Run(ctx, unit, req)
	for i := range findings {
		findings[i].File = filepath.ToSlash(findings[i].File)
	}
	if b, err := json.Marshal(findings); err == nil {
		_ = cache.Store(key, b)
	}
	return findings, nil
}

// discoverDumps returns the expanded-module dump files under root. A path
// pointing directly at a dump file is linted as a single unit.
func discoverDumps(root string) ([]string, error) {
	if info, err := os.Stat(root); err != nil {
		return nil, errors.Wrapf(err, "stat %s", root)
	} else if !info.IsDir() {
		return []string{root}, nil
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".hir.json") {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}
