// Package scale standardizes feature columns to zero mean and unit variance.
//
// Standardization is the usual first step before any variance-based
// decomposition (PCA, factor analysis, clustering on distances): features
// measured on different scales would otherwise dominate the covariance
// structure purely through their units.
//
// Model:
//
//	z[i][j] = (x[i][j] − mean[j]) / std[j]
//
// where mean and std are computed column-wise over the fitted matrix.
// The standard deviation uses the sample convention (ddof=1) by default;
// WithPopulationStd switches to the population convention (ddof=0).
//
// Zero-variance columns:
//
//	A constant column has no scale. By default its divisor is forced to 1,
//	so the column standardizes to all-zeros and downstream code keeps
//	working — the behavior of the usual reference scalers. Callers that
//	prefer to fail fast can opt into ErrZeroVariance via WithStrictVariance.
//
// The Scaler is fit-then-transform: Fit learns the column statistics,
// Transform applies them to any matrix with matching width, and
// InverseTransform undoes the mapping exactly (up to float rounding).
//
// Complexity: Fit and Transform are O(N·D) time, O(D) extra memory.
package scale
