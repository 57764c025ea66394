package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// analyzeConfig carries every knob of the analyze command. Flag values
// win over YAML values, which win over these defaults.
type analyzeConfig struct {
	Components        int     `yaml:"components"`         // 0 = pick by VarianceThreshold
	Whiten            bool    `yaml:"whiten"`             // unit-variance scores
	PopulationStd     bool    `yaml:"population_std"`     // ddof=0 standardization + covariance
	Delimiter         string  `yaml:"delimiter"`          // "" = whitespace runs
	LabelColumn       int     `yaml:"label_column"`       // -1 = last column
	NoLabels          bool    `yaml:"no_labels"`          // table has no label column
	VarianceThreshold float64 `yaml:"variance_threshold"` // cumulative target for auto-K
	OutDir            string  `yaml:"out_dir"`            // plot/score output directory
	Plots             bool    `yaml:"plots"`              // write scree/scatter/loadings PNGs
}

// defaultAnalyzeConfig mirrors the documented flag defaults.
func defaultAnalyzeConfig() analyzeConfig {
	return analyzeConfig{
		Components:        0,
		Delimiter:         "",
		LabelColumn:       -1,
		VarianceThreshold: 0.95,
		OutDir:            "out",
		Plots:             true,
	}
}

// loadConfigFile overlays the YAML file at path onto cfg.
func loadConfigFile(path string, cfg *analyzeConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}
