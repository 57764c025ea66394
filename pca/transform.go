package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ProjectionMatrix returns a copy of the D×K matrix whose columns are the
// top-K principal components.
func (p *PCA) ProjectionMatrix(k int) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	if err := p.checkK(k); err != nil {
		return nil, err
	}

	w := mat.NewDense(p.d, k, nil)
	w.Copy(p.components.Slice(0, p.d, 0, k))

	return w, nil
}

// Transform projects x onto the first k principal components:
// y = (x − mean) · W. Under WithWhiten every score column is additionally
// divided by √λ, giving unit variance per projected coordinate.
func (p *PCA) Transform(x mat.Matrix, k int) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	if err := p.checkK(k); err != nil {
		return nil, err
	}
	n, d, err := checkInput(x)
	if err != nil {
		return nil, err
	}
	if d != p.d {
		return nil, fmt.Errorf("got %d columns, fitted %d: %w", d, p.d, ErrDimensionMismatch)
	}
	if p.opts.Whiten {
		for i := 0; i < k; i++ {
			if p.eigvals[i] < eigenEps {
				return nil, fmt.Errorf("component %d: %w", i+1, ErrDegenerateWhiten)
			}
		}
	}

	centered := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-p.mean[j])
		}
	}

	var y mat.Dense
	y.Mul(centered, p.components.Slice(0, p.d, 0, k))

	if p.opts.Whiten {
		for j := 0; j < k; j++ {
			inv := 1 / math.Sqrt(p.eigvals[j])
			for i := 0; i < n; i++ {
				y.Set(i, j, y.At(i, j)*inv)
			}
		}
	}

	return &y, nil
}

// InverseTransform maps K-dimensional scores back to feature space:
// x̂ = y · Wᵀ + mean (after undoing whitening, if configured).
// With K < D the result is the rank-K reconstruction, not the original.
func (p *PCA) InverseTransform(y mat.Matrix) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	n, k, err := checkInput(y)
	if err != nil {
		return nil, err
	}
	if err = p.checkK(k); err != nil {
		return nil, err
	}

	scores := mat.NewDense(n, k, nil)
	scores.Copy(y)
	if p.opts.Whiten {
		for j := 0; j < k; j++ {
			// Transform refuses to whiten degenerate components, so any
			// well-formed score matrix has λ > 0 here.
			s := math.Sqrt(p.eigvals[j])
			for i := 0; i < n; i++ {
				scores.Set(i, j, scores.At(i, j)*s)
			}
		}
	}

	var xhat mat.Dense
	xhat.Mul(scores, p.components.Slice(0, p.d, 0, k).T())
	for i := 0; i < n; i++ {
		for j := 0; j < p.d; j++ {
			xhat.Set(i, j, xhat.At(i, j)+p.mean[j])
		}
	}

	return &xhat, nil
}

// ReconstructionError reports the mean squared error between x and its
// rank-k reconstruction InverseTransform(Transform(x, k)).
func (p *PCA) ReconstructionError(x mat.Matrix, k int) (float64, error) {
	y, err := p.Transform(x, k)
	if err != nil {
		return 0, err
	}
	xhat, err := p.InverseTransform(y)
	if err != nil {
		return 0, err
	}

	n, d := xhat.Dims()
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			diff := x.At(i, j) - xhat.At(i, j)
			sum += diff * diff
		}
	}

	return sum / float64(n*d), nil
}

// checkK validates a component count against the fitted width.
func (p *PCA) checkK(k int) error {
	if k < 1 || k > p.d {
		return fmt.Errorf("k=%d with D=%d: %w", k, p.d, ErrBadComponents)
	}

	return nil
}
