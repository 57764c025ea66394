package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/alexthie/cqs-machine-learning/dataset"
	"github.com/alexthie/cqs-machine-learning/pca"
	"github.com/alexthie/cqs-machine-learning/scale"
)

func newAnalyzeCmd() *cobra.Command {
	cfg := defaultAnalyzeConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Standardize a table, fit PCA, report variance and project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := overlayConfig(cmd, configPath, &cfg); err != nil {
					return err
				}
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runAnalyze(path, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file; explicit flags still win")
	cmd.Flags().IntVarP(&cfg.Components, "components", "k", cfg.Components,
		"number of components to keep (0 = pick by --variance-threshold)")
	cmd.Flags().BoolVar(&cfg.Whiten, "whiten", cfg.Whiten, "rescale projected scores to unit variance")
	cmd.Flags().BoolVar(&cfg.PopulationStd, "population", cfg.PopulationStd,
		"use the 1/N (population) convention for std and covariance")
	cmd.Flags().StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter,
		"field separator rune; empty = runs of whitespace")
	cmd.Flags().IntVar(&cfg.LabelColumn, "label-column", cfg.LabelColumn,
		"zero-based label column (-1 = last)")
	cmd.Flags().BoolVar(&cfg.NoLabels, "no-labels", cfg.NoLabels, "treat every column as a feature")
	cmd.Flags().Float64Var(&cfg.VarianceThreshold, "variance-threshold", cfg.VarianceThreshold,
		"cumulative explained-variance target used when --components is 0")
	cmd.Flags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory for scores and plots")
	cmd.Flags().BoolVar(&cfg.Plots, "plots", cfg.Plots, "write scree/scatter/loadings PNGs")

	return cmd
}

// overlayConfig loads a YAML file and applies it underneath any flags the
// user set explicitly on the command line.
func overlayConfig(cmd *cobra.Command, path string, cfg *analyzeConfig) error {
	fileCfg := *cfg
	if err := loadConfigFile(path, &fileCfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("components") {
		cfg.Components = fileCfg.Components
	}
	if !flags.Changed("whiten") {
		cfg.Whiten = fileCfg.Whiten
	}
	if !flags.Changed("population") {
		cfg.PopulationStd = fileCfg.PopulationStd
	}
	if !flags.Changed("delimiter") {
		cfg.Delimiter = fileCfg.Delimiter
	}
	if !flags.Changed("label-column") {
		cfg.LabelColumn = fileCfg.LabelColumn
	}
	if !flags.Changed("no-labels") {
		cfg.NoLabels = fileCfg.NoLabels
	}
	if !flags.Changed("variance-threshold") {
		cfg.VarianceThreshold = fileCfg.VarianceThreshold
	}
	if !flags.Changed("out-dir") {
		cfg.OutDir = fileCfg.OutDir
	}
	if !flags.Changed("plots") {
		cfg.Plots = fileCfg.Plots
	}

	return nil
}

// runAnalyze is the whole pipeline: load → standardize → fit → report →
// project → cross-check → persist.
func runAnalyze(path string, cfg analyzeConfig) error {
	tab, err := loadTable(path, cfg)
	if err != nil {
		return err
	}
	log.Info().Int("rows", tab.N()).Int("features", tab.D()).
		Int("classes", len(tab.Classes())).Msg("table loaded")

	var scaleOpts []scale.Option
	var pcaOpts []pca.Option
	if cfg.PopulationStd {
		scaleOpts = append(scaleOpts, scale.WithPopulationStd())
		pcaOpts = append(pcaOpts, pca.WithPopulationCovariance())
	}
	if cfg.Whiten {
		pcaOpts = append(pcaOpts, pca.WithWhiten())
	}

	z, err := scale.NewScaler(scaleOpts...).FitTransform(tab.Matrix())
	if err != nil {
		return err
	}

	model := pca.New(pcaOpts...)
	if err = model.Fit(z); err != nil {
		return err
	}

	table, err := model.VarianceTable()
	if err != nil {
		return err
	}
	printVarianceTable(table)

	k := cfg.Components
	if k == 0 {
		if k, err = model.ComponentsForVariance(cfg.VarianceThreshold); err != nil {
			return err
		}
		log.Info().Float64("threshold", cfg.VarianceThreshold).Int("k", k).
			Msg("component count picked by cumulative variance")
	}

	scores, err := model.Transform(z, k)
	if err != nil {
		return err
	}

	dev := libraryDeviation(z, model)
	log.Info().Float64("max_variance_dev", dev).
		Msg("cross-checked against gonum stat.PC")

	if err = os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	scoresPath := filepath.Join(cfg.OutDir, "scores.csv")
	if err = writeScores(scoresPath, scores, tab.Labels()); err != nil {
		return err
	}
	log.Info().Str("path", scoresPath).Msg("projected coordinates written")

	if cfg.Plots {
		if err = writePlots(cfg.OutDir, model, scores, tab); err != nil {
			return err
		}
	}

	return nil
}

// loadTable reads the argument file, or falls back to the embedded Iris.
func loadTable(path string, cfg analyzeConfig) (*dataset.Table, error) {
	if path == "" {
		log.Info().Msg("no input file; using the embedded Iris dataset")

		return dataset.Iris(), nil
	}

	var opts []dataset.Option
	if cfg.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(cfg.Delimiter)
		if size != len(cfg.Delimiter) || r == utf8.RuneError {
			return nil, fmt.Errorf("delimiter must be a single rune, got %q", cfg.Delimiter)
		}
		opts = append(opts, dataset.WithDelimiter(r))
	}
	if cfg.NoLabels {
		opts = append(opts, dataset.WithNoLabels())
	} else {
		opts = append(opts, dataset.WithLabelColumn(cfg.LabelColumn))
	}

	return dataset.Load(path, opts...)
}

// printVarianceTable renders the eigenvalue/ratio/cumulative report.
func printVarianceTable(table []pca.ComponentVariance) {
	fmt.Printf("%-6s %14s %10s %12s\n", "comp", "eigenvalue", "ratio", "cumulative")
	for _, row := range table {
		fmt.Printf("PC%-4d %14.6f %10.4f %12.4f\n",
			row.Component, row.Eigenvalue, row.Ratio, row.Cumulative)
	}
}

// libraryDeviation fits gonum's stat.PC on the same standardized data and
// reports the largest absolute difference between its component variances
// and the hand-rolled eigenvalues.
func libraryDeviation(z *mat.Dense, model *pca.PCA) float64 {
	var pc stat.PC
	if !pc.PrincipalComponents(z, nil) {
		log.Warn().Msg("stat.PC did not converge; skipping cross-check")

		return 0
	}
	libVars := pc.VarsTo(nil)
	vals, err := model.Eigenvalues()
	if err != nil {
		return 0
	}

	var dev float64
	for i := range vals {
		if d := vals[i] - libVars[i]; d > dev {
			dev = d
		} else if -d > dev {
			dev = -d
		}
	}

	return dev
}

// writeScores persists the projected coordinates, one row per
// observation, with the class label in the last column when present.
func writeScores(path string, scores *mat.Dense, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	n, k := scores.Dims()

	header := make([]string, 0, k+1)
	for j := 1; j <= k; j++ {
		header = append(header, fmt.Sprintf("pc%d", j))
	}
	if labels != nil {
		header = append(header, "label")
	}
	if err = w.Write(header); err != nil {
		return err
	}

	rec := make([]string, 0, k+1)
	for i := 0; i < n; i++ {
		rec = rec[:0]
		for j := 0; j < k; j++ {
			rec = append(rec, strconv.FormatFloat(scores.At(i, j), 'g', -1, 64))
		}
		if labels != nil {
			rec = append(rec, labels[i])
		}
		if err = w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
