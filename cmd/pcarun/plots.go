package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/alexthie/cqs-machine-learning/dataset"
	"github.com/alexthie/cqs-machine-learning/pca"
)

// writePlots renders the scree plot, the 2-D score scatter and the
// eigenvector loadings into outDir. The scatter and loadings need at
// least two dimensions and are skipped otherwise.
func writePlots(outDir string, model *pca.PCA, scores *mat.Dense, tab *dataset.Table) error {
	screePath := filepath.Join(outDir, "scree.png")
	if err := saveScree(model, screePath); err != nil {
		return err
	}
	log.Info().Str("path", screePath).Msg("scree plot written")

	if _, k := scores.Dims(); k >= 2 {
		scatterPath := filepath.Join(outDir, "scatter.png")
		if err := saveScatter(scores, tab.Labels(), scatterPath); err != nil {
			return err
		}
		log.Info().Str("path", scatterPath).Msg("score scatter written")
	}

	if model.D() >= 2 {
		loadingsPath := filepath.Join(outDir, "loadings.png")
		if err := saveLoadings(model, tab.FeatureNames(), loadingsPath); err != nil {
			return err
		}
		log.Info().Str("path", loadingsPath).Msg("loadings plot written")
	}

	return nil
}

// saveScree draws explained-variance bars with the cumulative curve on top.
func saveScree(model *pca.PCA, path string) error {
	table, err := model.VarianceTable()
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Explained variance per principal component"
	p.Y.Label.Text = "fraction of total variance"
	p.Y.Max = 1.05

	values := make(plotter.Values, len(table))
	cumulative := make(plotter.XYs, len(table))
	names := make([]string, len(table))
	for i, row := range table {
		values[i] = row.Ratio
		cumulative[i] = plotter.XY{X: float64(i), Y: row.Cumulative}
		names[i] = fmt.Sprintf("PC%d", row.Component)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return fmt.Errorf("scree bars: %w", err)
	}
	line, err := plotter.NewLine(cumulative)
	if err != nil {
		return fmt.Errorf("cumulative line: %w", err)
	}

	p.Add(bars, line)
	p.NominalX(names...)
	p.Legend.Add("per component", bars)
	p.Legend.Add("cumulative", line)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// saveScatter draws the first two score columns, one series per class so
// the legend doubles as a class key.
func saveScatter(scores *mat.Dense, labels []string, path string) error {
	p := plot.New()
	p.Title.Text = "Observations in the PC1/PC2 plane"
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"

	n, _ := scores.Dims()
	if labels == nil {
		xys := make(plotter.XYs, n)
		for i := 0; i < n; i++ {
			xys[i] = plotter.XY{X: scores.At(i, 0), Y: scores.At(i, 1)}
		}
		if err := plotutil.AddScatters(p, xys); err != nil {
			return fmt.Errorf("scatter: %w", err)
		}

		return p.Save(6*vg.Inch, 5*vg.Inch, path)
	}

	byClass := make(map[string]plotter.XYs)
	order := make([]string, 0, 4)
	for i := 0; i < n; i++ {
		if _, seen := byClass[labels[i]]; !seen {
			order = append(order, labels[i])
		}
		byClass[labels[i]] = append(byClass[labels[i]], plotter.XY{X: scores.At(i, 0), Y: scores.At(i, 1)})
	}

	series := make([]interface{}, 0, 2*len(order))
	for _, class := range order {
		series = append(series, class, byClass[class])
	}
	if err := plotutil.AddScatters(p, series...); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}

	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}

// saveLoadings draws each original feature as a segment from the origin
// to its weight on the first two components.
func saveLoadings(model *pca.PCA, featureNames []string, path string) error {
	w, err := model.ProjectionMatrix(2)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Feature loadings on PC1/PC2"
	p.X.Label.Text = "PC1 weight"
	p.Y.Label.Text = "PC2 weight"

	d, _ := w.Dims()
	tips := make(plotter.XYs, d)
	names := make([]string, d)
	for i := 0; i < d; i++ {
		tip := plotter.XY{X: w.At(i, 0), Y: w.At(i, 1)}
		tips[i] = tip
		if featureNames != nil {
			names[i] = featureNames[i]
		} else {
			names[i] = fmt.Sprintf("x%d", i+1)
		}

		seg, lineErr := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, tip})
		if lineErr != nil {
			return fmt.Errorf("loading segment %d: %w", i, lineErr)
		}
		p.Add(seg)
	}

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: tips, Labels: names})
	if err != nil {
		return fmt.Errorf("loading labels: %w", err)
	}
	p.Add(lbls)

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
