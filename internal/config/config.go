package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type IgnoreRule struct {
	Rule   string `json:"rule" yaml:"rule"`
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

type Config struct {
	SeverityThreshold string       `json:"severityThreshold" yaml:"severityThreshold"`
	TimeBudgetMs      int          `json:"timeBudgetMs" yaml:"timeBudgetMs"`
	Ignore            []IgnoreRule `json:"ignore" yaml:"ignore"`
	Rules             []string     `json:"rules" yaml:"rules"`
}

func Default() Config {
	return Config{
		SeverityThreshold: "low",
		TimeBudgetMs:      4500,
	}
}

// candidates in lookup order; the JSON form wins when both exist in one dir
var fileNames = []string{".inklint.json", ".inklint.yaml"}

// Load searches upward from startDir for a config file. It returns the
// defaults and an empty path when none is found.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	for {
		for _, name := range fileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			if filepath.Ext(name) == ".yaml" {
				err = yaml.Unmarshal(b, &cfg)
			} else {
				err = json.Unmarshal(b, &cfg)
			}
			return cfg, candidate, err
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
