package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"smartcommit/internal/classify"
)

// FileName is the optional per-repository override file.
const FileName = ".smartcommit.yaml"

type fileConfig struct {
	DocExtensions    []string `yaml:"doc_extensions"`
	SourceExtensions []string `yaml:"source_extensions"`
	ManifestFiles    []string `yaml:"manifest_files"`
	TestTokens       []string `yaml:"test_tokens"`
	TestDirPrefixes  []string `yaml:"test_dir_prefixes"`
}

// Load returns the classifier rules for a repository: the defaults, with
// any set listed in .smartcommit.yaml replaced wholesale. A missing file
// yields the defaults.
func Load(repoDir string) (classify.Rules, error) {
	rules := classify.DefaultRules()

	data, err := os.ReadFile(filepath.Join(repoDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return rules, nil
		}
		return rules, fmt.Errorf("read %s: %w", FileName, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return rules, fmt.Errorf("parse %s: %w", FileName, err)
	}

	if len(cfg.DocExtensions) > 0 {
		rules.DocExtensions = cfg.DocExtensions
	}
	if len(cfg.SourceExtensions) > 0 {
		rules.SourceExtensions = cfg.SourceExtensions
	}
	if len(cfg.ManifestFiles) > 0 {
		rules.ManifestFiles = cfg.ManifestFiles
	}
	if len(cfg.TestTokens) > 0 {
		rules.TestTokens = cfg.TestTokens
	}
	if len(cfg.TestDirPrefixes) > 0 {
		rules.TestDirPrefixes = cfg.TestDirPrefixes
	}
	return rules, nil
}
