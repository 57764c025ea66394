package pca

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCA is a fit-then-transform principal component model.
// The zero value is not usable; construct with New.
type PCA struct {
	opts Options

	n, d       int
	mean       []float64     // fitted column means, len d
	cov        *mat.SymDense // d×d covariance of the fitted data
	eigvals    []float64     // descending, clamped at zero, len d
	components *mat.Dense    // d×d, column i holds the i-th eigenvector
	total      float64       // sum of eigenvalues
	fitted     bool
}

// New returns an unfitted PCA with the given options applied.
func New(opts ...Option) *PCA {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &PCA{opts: o}
}

// Fit learns the principal components of x.
//
// Steps: center column-wise, build the covariance matrix, eigendecompose,
// sort eigenpairs by descending eigenvalue, orient signs deterministically.
// Refitting replaces the learned model.
func (p *PCA) Fit(x mat.Matrix) error {
	n, d, err := checkInput(x)
	if err != nil {
		return err
	}
	if n < 2 {
		return fmt.Errorf("got %d rows: %w", n, ErrTooFewRows)
	}

	mean := make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		mean[j] = stat.Mean(col, nil)
	}

	cov := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(cov, x, nil)
	if p.opts.PopulationCovariance {
		// stat.CovarianceMatrix uses 1/(N−1); rescale to 1/N.
		cov.ScaleSym(float64(n-1)/float64(n), cov)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(cov, true); !ok {
		return ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// EigenSym reports eigenvalues in ascending order; flip to descending
	// via an explicit index sort so ties keep a stable orientation.
	order := make([]int, d)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	eigvals := make([]float64, d)
	components := mat.NewDense(d, d, nil)
	var total float64
	for rank, src := range order {
		v := vals[src]
		if v < eigenEps {
			v = 0 // clamp round-off negatives
		}
		eigvals[rank] = v
		total += v

		copyOriented(components, rank, &vecs, src)
	}

	p.n, p.d = n, d
	p.mean = mean
	p.cov = cov
	p.eigvals = eigvals
	p.components = components
	p.total = total
	p.fitted = true

	return nil
}

// FitTransform fits on x and projects it onto the first k components.
func (p *PCA) FitTransform(x mat.Matrix, k int) (*mat.Dense, error) {
	if err := p.Fit(x); err != nil {
		return nil, err
	}

	return p.Transform(x, k)
}

// D reports the fitted feature count, or 0 before Fit.
func (p *PCA) D() int {
	if !p.fitted {
		return 0
	}

	return p.d
}

// Covariance returns a copy of the fitted D×D covariance matrix.
func (p *PCA) Covariance() (*mat.SymDense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	out := mat.NewSymDense(p.d, nil)
	out.CopySym(p.cov)

	return out, nil
}

// Eigenvalues returns a copy of the eigenvalues in descending order.
func (p *PCA) Eigenvalues() ([]float64, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, p.d)
	copy(out, p.eigvals)

	return out, nil
}

// Components returns a copy of the full D×D eigenvector basis;
// column i is the i-th principal component.
func (p *PCA) Components() (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	out := mat.NewDense(p.d, p.d, nil)
	out.Copy(p.components)

	return out, nil
}

// Mean returns a copy of the fitted column means.
func (p *PCA) Mean() ([]float64, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, p.d)
	copy(out, p.mean)

	return out, nil
}

// ExplainedVarianceRatio returns λᵢ/Σλ per component, descending.
// A degenerate model (all-zero covariance) reports all-zero ratios.
func (p *PCA) ExplainedVarianceRatio() ([]float64, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, p.d)
	if p.total < eigenEps {
		return out, nil
	}
	for i, v := range p.eigvals {
		out[i] = v / p.total
	}

	return out, nil
}

// CumulativeExplained returns the running sum of the explained-variance
// ratios: out[i] is the fraction captured by components 1..i+1.
func (p *PCA) CumulativeExplained() ([]float64, error) {
	ratios, err := p.ExplainedVarianceRatio()
	if err != nil {
		return nil, err
	}
	var run float64
	for i, r := range ratios {
		run += r
		ratios[i] = run
	}

	return ratios, nil
}

// VarianceTable returns one ComponentVariance row per component,
// in descending-eigenvalue order. Handy for reports and scree plots.
func (p *PCA) VarianceTable() ([]ComponentVariance, error) {
	ratios, err := p.ExplainedVarianceRatio()
	if err != nil {
		return nil, err
	}

	table := make([]ComponentVariance, p.d)
	var run float64
	for i := range table {
		run += ratios[i]
		table[i] = ComponentVariance{
			Component:  i + 1,
			Eigenvalue: p.eigvals[i],
			Ratio:      ratios[i],
			Cumulative: run,
		}
	}

	return table, nil
}

// ComponentsForVariance returns the smallest K whose cumulative explained
// variance reaches threshold (in (0, 1]). A degenerate model falls back
// to all D components.
func (p *PCA) ComponentsForVariance(threshold float64) (int, error) {
	if !p.fitted {
		return 0, ErrNotFitted
	}
	if threshold <= 0 || threshold > 1 || math.IsNaN(threshold) {
		return 0, fmt.Errorf("threshold %v: %w", threshold, ErrBadThreshold)
	}

	cum, err := p.CumulativeExplained()
	if err != nil {
		return 0, err
	}
	for i, c := range cum {
		if c >= threshold-eigenEps {
			return i + 1, nil
		}
	}

	return p.d, nil
}

// checkInput validates the common matrix preconditions and scans for
// non-finite cells.
func checkInput(x mat.Matrix) (n, d int, err error) {
	if x == nil {
		return 0, 0, ErrNilMatrix
	}
	n, d = x.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			if v := x.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
	}

	return n, d, nil
}

// copyOriented copies eigenvector column src of vecs into column dst of
// out, flipping its sign so the largest-magnitude entry is positive.
// The orientation makes Fit deterministic across LAPACK builds.
func copyOriented(out *mat.Dense, dst int, vecs *mat.Dense, src int) {
	d, _ := vecs.Dims()
	pivot, largest := 0, 0.0
	for i := 0; i < d; i++ {
		if a := math.Abs(vecs.At(i, src)); a > largest {
			largest, pivot = a, i
		}
	}
	flip := 1.0
	if vecs.At(pivot, src) < 0 {
		flip = -1
	}
	for i := 0; i < d; i++ {
		out.Set(i, dst, flip*vecs.At(i, src))
	}
}
