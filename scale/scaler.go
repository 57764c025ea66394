// Package scale: Scaler implementation, sentinel errors and options.
package scale

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors returned by Scaler methods.
var (
	// ErrNilMatrix indicates a nil matrix was passed.
	ErrNilMatrix = errors.New("scale: matrix is nil")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("scale: matrix must have at least one row and one column")

	// ErrNotFitted indicates Transform/InverseTransform was called before Fit.
	ErrNotFitted = errors.New("scale: scaler is not fitted; call Fit first")

	// ErrDimensionMismatch indicates a matrix whose column count differs
	// from the fitted width.
	ErrDimensionMismatch = errors.New("scale: column count differs from fitted width")

	// ErrZeroVariance indicates a constant column under WithStrictVariance.
	ErrZeroVariance = errors.New("scale: zero-variance column")

	// ErrNonFinite indicates a NaN or ±Inf cell in the input matrix.
	ErrNonFinite = errors.New("scale: non-finite value in input matrix")
)

// varianceEps is the threshold below which a column standard deviation
// is treated as zero.
const varianceEps = 1e-12

// Options configures a Scaler.
//
// PopulationStd  – use the 1/N (ddof=0) standard deviation instead of 1/(N−1).
// StrictVariance – return ErrZeroVariance on constant columns instead of
// silently mapping them to zero.
type Options struct {
	PopulationStd  bool
	StrictVariance bool
}

// Option represents a functional option for configuring a Scaler.
type Option func(*Options)

// WithPopulationStd selects the population (ddof=0) standard deviation.
func WithPopulationStd() Option {
	return func(o *Options) {
		o.PopulationStd = true
	}
}

// WithStrictVariance makes Fit fail with ErrZeroVariance on constant columns.
func WithStrictVariance() Option {
	return func(o *Options) {
		o.StrictVariance = true
	}
}

// DefaultOptions returns the default Scaler configuration:
// sample standard deviation (ddof=1), constant columns mapped to zero.
func DefaultOptions() Options {
	return Options{}
}

// Scaler standardizes feature columns to zero mean and unit variance.
// The zero value is not usable; construct with NewScaler.
type Scaler struct {
	opts   Options
	mean   []float64
	std    []float64 // divisors; constant columns hold 1 under the lenient policy
	fitted bool
}

// NewScaler returns an unfitted Scaler with the given options applied.
func NewScaler(opts ...Option) *Scaler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Scaler{opts: o}
}

// Fit learns per-column means and standard deviations from x.
// Refitting an already fitted Scaler replaces the learned statistics.
func (s *Scaler) Fit(x mat.Matrix) error {
	n, d, err := checkMatrix(x)
	if err != nil {
		return err
	}

	mean := make([]float64, d)
	std := make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		if err = checkFinite(col, j); err != nil {
			return err
		}

		m, sd := stat.MeanStdDev(col, nil)
		if s.opts.PopulationStd {
			sd = stat.PopStdDev(col, nil)
		}
		if n == 1 || math.IsNaN(sd) {
			sd = 0 // a single observation has no spread
		}
		if sd < varianceEps {
			if s.opts.StrictVariance {
				return fmt.Errorf("column %d: %w", j, ErrZeroVariance)
			}
			sd = 1 // constant column standardizes to all-zeros
		}
		mean[j], std[j] = m, sd
	}

	s.mean, s.std, s.fitted = mean, std, true

	return nil
}

// Transform returns (x − mean) / std as a new matrix.
func (s *Scaler) Transform(x mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	n, d, err := checkMatrix(x)
	if err != nil {
		return nil, err
	}
	if d != len(s.mean) {
		return nil, fmt.Errorf("got %d columns, fitted %d: %w", d, len(s.mean), ErrDimensionMismatch)
	}

	z := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			z.Set(i, j, (x.At(i, j)-s.mean[j])/s.std[j])
		}
	}

	return z, nil
}

// FitTransform fits on x and returns its standardized form in one step.
func (s *Scaler) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}

	return s.Transform(x)
}

// InverseTransform maps standardized values back to the original units:
// x = z·std + mean.
func (s *Scaler) InverseTransform(z mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	n, d, err := checkMatrix(z)
	if err != nil {
		return nil, err
	}
	if d != len(s.mean) {
		return nil, fmt.Errorf("got %d columns, fitted %d: %w", d, len(s.mean), ErrDimensionMismatch)
	}

	x := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			x.Set(i, j, z.At(i, j)*s.std[j]+s.mean[j])
		}
	}

	return x, nil
}

// Mean returns a copy of the fitted column means, or nil before Fit.
func (s *Scaler) Mean() []float64 {
	if !s.fitted {
		return nil
	}
	out := make([]float64, len(s.mean))
	copy(out, s.mean)

	return out
}

// StdDev returns a copy of the fitted column divisors, or nil before Fit.
// Constant columns report 1 under the lenient zero-variance policy.
func (s *Scaler) StdDev() []float64 {
	if !s.fitted {
		return nil
	}
	out := make([]float64, len(s.std))
	copy(out, s.std)

	return out
}

// checkMatrix validates the common matrix preconditions and reports dims.
func checkMatrix(x mat.Matrix) (n, d int, err error) {
	if x == nil {
		return 0, 0, ErrNilMatrix
	}
	n, d = x.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrEmptyMatrix
	}

	return n, d, nil
}

// checkFinite rejects NaN/±Inf cells in a column.
func checkFinite(col []float64, j int) error {
	for _, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("column %d: %w", j, ErrNonFinite)
		}
	}

	return nil
}
