// Package pca: sentinel errors, configuration options and result types.
package pca

import "errors"

// Sentinel errors returned by PCA methods.
var (
	// ErrNilMatrix indicates a nil matrix was passed.
	ErrNilMatrix = errors.New("pca: matrix is nil")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("pca: matrix must have at least one row and one column")

	// ErrTooFewRows indicates fewer than two observations; a covariance
	// matrix needs at least two rows under either ddof convention.
	ErrTooFewRows = errors.New("pca: at least two observations are required")

	// ErrNotFitted indicates an accessor or Transform call before Fit.
	ErrNotFitted = errors.New("pca: model is not fitted; call Fit first")

	// ErrBadComponents indicates a component count outside [1, D].
	ErrBadComponents = errors.New("pca: component count must be in [1, D]")

	// ErrDimensionMismatch indicates a matrix whose width differs from the
	// fitted feature count.
	ErrDimensionMismatch = errors.New("pca: column count differs from fitted width")

	// ErrEigenFailed indicates the symmetric eigensolver did not converge.
	ErrEigenFailed = errors.New("pca: eigendecomposition failed to converge")

	// ErrNonFinite indicates a NaN or ±Inf cell in the input matrix.
	ErrNonFinite = errors.New("pca: non-finite value in input matrix")

	// ErrBadThreshold indicates a variance threshold outside (0, 1].
	ErrBadThreshold = errors.New("pca: variance threshold must be in (0, 1]")

	// ErrDegenerateWhiten indicates whitening was requested for a component
	// with (numerically) zero variance; 1/√λ is undefined there.
	ErrDegenerateWhiten = errors.New("pca: cannot whiten a zero-variance component")
)

// eigenEps is the threshold below which an eigenvalue is treated as zero:
// round-off negatives are clamped, and whitening such a component errors.
const eigenEps = 1e-12

// Options configures a PCA model.
//
// PopulationCovariance – use the 1/N covariance convention instead of 1/(N−1).
// Whiten               – rescale projected scores to unit variance per component.
type Options struct {
	PopulationCovariance bool
	Whiten               bool
}

// Option represents a functional option for configuring PCA.
type Option func(*Options)

// WithPopulationCovariance selects the population (1/N) covariance
// convention. The default is the sample (1/(N−1)) convention.
func WithPopulationCovariance() Option {
	return func(o *Options) {
		o.PopulationCovariance = true
	}
}

// WithWhiten makes Transform divide every score column by the square root
// of its eigenvalue, so each projected coordinate has unit variance.
// InverseTransform undoes the rescaling automatically.
func WithWhiten() Option {
	return func(o *Options) {
		o.Whiten = true
	}
}

// DefaultOptions returns the default configuration:
// sample covariance, no whitening.
func DefaultOptions() Options {
	return Options{}
}

// ComponentVariance is one row of the explained-variance table.
type ComponentVariance struct {
	Component  int     // 1-based component index
	Eigenvalue float64 // variance carried by the component
	Ratio      float64 // fraction of total variance
	Cumulative float64 // running sum of Ratio over components 1..Component
}
