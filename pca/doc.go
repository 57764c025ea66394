// Package pca implements Principal Component Analysis via
// eigendecomposition of the covariance matrix.
//
// Description:
//
//	PCA rotates a dataset into an orthonormal basis whose axes
//	(the principal components) are ordered by the variance they capture.
//	Keeping only the first K axes yields the best rank-K linear
//	approximation of the data in the least-squares sense — the classic
//	tool for dimensionality reduction, visualization and denoising.
//
// Algorithm Outline:
//  1. Center the N×D input column-wise (means are retained for Transform).
//  2. Compute the D×D covariance matrix Σ (sample 1/(N−1) convention by
//     default; WithPopulationCovariance selects 1/N).
//  3. Eigendecompose Σ = V Λ Vᵀ (symmetric eigensolver).
//  4. Sort eigenpairs by descending eigenvalue; clamp round-off negatives
//     to zero; fix each eigenvector's sign so its largest-magnitude entry
//     is positive (deterministic orientation).
//  5. Explained-variance ratio of component i is λᵢ / Σλ; the cumulative
//     series picks K for a target variance threshold.
//  6. Transform projects centered data onto the first K eigenvectors;
//     WithWhiten additionally rescales each score column by 1/√λ so the
//     projected coordinates have unit variance.
//  7. InverseTransform maps scores back through the transposed basis and
//     re-adds the means; with K < D this is the rank-K reconstruction.
//
// Invariants (see the package tests):
//   - Components are orthonormal: WᵀW = I.
//   - Eigenvalues are non-negative and sum to the total variance
//     (≈ D for standardized input under a matching ddof convention).
//   - Explained-variance ratios sum to 1; the cumulative series is
//     non-decreasing.
//   - Reconstruction error is non-increasing in K and ~0 at K = D.
//   - Results agree with gonum's stat.PC up to per-component sign.
//
// Complexity:
//
//	Fit:       O(N·D²) covariance + O(D³) eigendecomposition.
//	Transform: O(N·D·K).
//	Memory:    O(D²) for the basis and covariance.
//
// Errors: all failures are sentinel-based (ErrNotFitted, ErrTooFewRows,
// ErrBadComponents, …) and wrapped with dimensional context at call sites.
package pca
