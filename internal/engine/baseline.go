package engine

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/xab-mack/inklint/internal/model"
)

// FilterByBaseline drops findings whose fingerprint is listed in the
// baseline file. An empty path disables baseline filtering.
func FilterByBaseline(findings []model.Finding, path string) ([]model.Finding, error) {
	if path == "" {
		return findings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fps []string
	if err := json.Unmarshal(data, &fps); err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(fps))
	for _, fp := range fps {
		known[fp] = true
	}
	var out []model.Finding
	for _, f := range findings {
		if f.Fingerprint != "" && known[f.Fingerprint] {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// WriteBaseline records the fingerprints of the given findings so future
// runs can report only new ones.
func WriteBaseline(path string, findings []model.Finding) error {
	seen := make(map[string]bool)
	var fps []string
	for _, f := range findings {
		if f.Fingerprint == "" || seen[f.Fingerprint] {
			continue
		}
		seen[f.Fingerprint] = true
		fps = append(fps, f.Fingerprint)
	}
	sort.Strings(fps)
	data, err := json.MarshalIndent(fps, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
