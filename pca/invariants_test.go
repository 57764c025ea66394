package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/alexthie/cqs-machine-learning/dataset"
	"github.com/alexthie/cqs-machine-learning/pca"
	"github.com/alexthie/cqs-machine-learning/scale"
)

// randomTable builds a deterministic full-rank n×d matrix with distinct
// column scales, so every eigenvalue is comfortably positive.
func randomTable(n, d int) *mat.Dense {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n*d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			data[i*d+j] = rng.NormFloat64() * float64(j+1)
		}
	}

	return mat.NewDense(n, d, data)
}

// TestPCA_ComponentsOrthonormal verifies WᵀW = I for the full basis.
func TestPCA_ComponentsOrthonormal(t *testing.T) {
	p := pca.New()
	require.NoError(t, p.Fit(randomTable(200, 6)))

	w, err := p.Components()
	require.NoError(t, err)

	var gram mat.Dense
	gram.Mul(w.T(), w)

	d, _ := w.Dims()
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-10, "gram(%d,%d)", i, j)
		}
	}
}

// TestPCA_EigenvalueSumEqualsTotalVariance verifies Σλ equals the trace
// of the covariance matrix (the total variance of the data).
func TestPCA_EigenvalueSumEqualsTotalVariance(t *testing.T) {
	x := randomTable(200, 6)
	p := pca.New()
	require.NoError(t, p.Fit(x))

	vals, err := p.Eigenvalues()
	require.NoError(t, err)
	var sum float64
	for _, v := range vals {
		sum += v
	}

	cov, err := p.Covariance()
	require.NoError(t, err)
	var trace float64
	for i := 0; i < 6; i++ {
		trace += cov.At(i, i)
	}

	assert.InDelta(t, trace, sum, 1e-9)
}

// TestPCA_StandardizedTotalVariance verifies that for standardized data
// the eigenvalues sum to ≈ D under the matching ddof convention.
func TestPCA_StandardizedTotalVariance(t *testing.T) {
	z, err := scale.NewScaler().FitTransform(randomTable(150, 5))
	require.NoError(t, err)

	p := pca.New()
	require.NoError(t, p.Fit(z))

	vals, err := p.Eigenvalues()
	require.NoError(t, err)
	var sum float64
	for _, v := range vals {
		sum += v
	}
	assert.InDelta(t, 5, sum, 1e-9, "standardized columns each contribute unit variance")
}

// TestPCA_RatiosSumToOneAndCumulativeMonotone checks the variance bookkeeping.
func TestPCA_RatiosSumToOneAndCumulativeMonotone(t *testing.T) {
	p := pca.New()
	require.NoError(t, p.Fit(randomTable(120, 7)))

	ratios, err := p.ExplainedVarianceRatio()
	require.NoError(t, err)
	var sum float64
	for i, r := range ratios {
		assert.GreaterOrEqual(t, r, 0.0, "ratio %d", i)
		sum += r
	}
	assert.InDelta(t, 1, sum, 1e-12)

	cum, err := p.CumulativeExplained()
	require.NoError(t, err)
	for i := 1; i < len(cum); i++ {
		assert.GreaterOrEqual(t, cum[i], cum[i-1], "cumulative series must be non-decreasing")
	}
	assert.InDelta(t, 1, cum[len(cum)-1], 1e-12)

	table, err := p.VarianceTable()
	require.NoError(t, err)
	require.Len(t, table, 7)
	for i, row := range table {
		assert.Equal(t, i+1, row.Component)
		assert.InDelta(t, ratios[i], row.Ratio, 1e-15)
		assert.InDelta(t, cum[i], row.Cumulative, 1e-15)
	}
}

// TestPCA_ReconstructionErrorMonotone verifies the error is non-increasing
// in K and essentially zero at K = D.
func TestPCA_ReconstructionErrorMonotone(t *testing.T) {
	x := randomTable(100, 6)
	p := pca.New()
	require.NoError(t, p.Fit(x))

	prev := math.Inf(1)
	for k := 1; k <= 6; k++ {
		mse, err := p.ReconstructionError(x, k)
		require.NoError(t, err)
		assert.LessOrEqual(t, mse, prev+1e-12, "k=%d must not increase the error", k)
		prev = mse
	}
	assert.InDelta(t, 0, prev, 1e-9, "full-rank reconstruction is exact")
}

// TestPCA_InverseRoundTripFullRank verifies InverseTransform(Transform) is
// the identity at K = D, with and without whitening.
func TestPCA_InverseRoundTripFullRank(t *testing.T) {
	x := randomTable(80, 4)
	for _, opts := range [][]pca.Option{nil, {pca.WithWhiten()}} {
		p := pca.New(opts...)
		require.NoError(t, p.Fit(x))

		y, err := p.Transform(x, 4)
		require.NoError(t, err)
		back, err := p.InverseTransform(y)
		require.NoError(t, err)

		assert.True(t, mat.EqualApprox(x, back, 1e-9), "whiten=%v", len(opts) == 1)
	}
}

// TestPCA_WhitenedScoresUnitVariance verifies the whitening contract:
// every projected coordinate of the fitted data has sample variance 1.
func TestPCA_WhitenedScoresUnitVariance(t *testing.T) {
	x := randomTable(300, 5)
	p := pca.New(pca.WithWhiten())
	require.NoError(t, p.Fit(x))

	y, err := p.Transform(x, 5)
	require.NoError(t, err)

	n, _ := y.Dims()
	col := make([]float64, n)
	for j := 0; j < 5; j++ {
		mat.Col(col, j, y)
		assert.InDelta(t, 1, stat.Variance(col, nil), 1e-9, "whitened column %d", j)
	}
}

// TestPCA_AgreesWithGonumPC compares the hand-rolled eigendecomposition
// against gonum's SVD-based stat.PC: identical variances, identical
// components up to per-column sign.
func TestPCA_AgreesWithGonumPC(t *testing.T) {
	x := randomTable(150, 5)

	p := pca.New()
	require.NoError(t, p.Fit(x))
	vals, err := p.Eigenvalues()
	require.NoError(t, err)
	comps, err := p.Components()
	require.NoError(t, err)

	var pc stat.PC
	require.True(t, pc.PrincipalComponents(x, nil), "stat.PC must succeed on full-rank data")
	var libVecs mat.Dense
	pc.VectorsTo(&libVecs)
	libVars := pc.VarsTo(nil)

	for j := 0; j < 5; j++ {
		assert.InDelta(t, libVars[j], vals[j], 1e-9, "variance of component %d", j)
		for i := 0; i < 5; i++ {
			assert.InDelta(t, math.Abs(libVecs.At(i, j)), math.Abs(comps.At(i, j)), 1e-9,
				"component %d entry %d (up to sign)", j, i)
		}
	}
}

// TestPCA_IrisPipeline runs the full standardize→fit pipeline on the
// embedded Iris table and checks the well-known variance structure.
func TestPCA_IrisPipeline(t *testing.T) {
	iris := dataset.Iris()
	z, err := scale.NewScaler().FitTransform(iris.Matrix())
	require.NoError(t, err)

	p := pca.New()
	require.NoError(t, p.Fit(z))

	cum, err := p.CumulativeExplained()
	require.NoError(t, err)
	assert.Greater(t, cum[0], 0.70, "PC1 dominates the standardized Iris data")
	assert.Greater(t, cum[1], 0.94, "two components carry ~96%% of the variance")

	k, err := p.ComponentsForVariance(0.95)
	require.NoError(t, err)
	assert.Equal(t, 2, k, "Iris needs two components for the 95%% threshold")

	y, err := p.Transform(z, k)
	require.NoError(t, err)
	n, d := y.Dims()
	assert.Equal(t, iris.N(), n)
	assert.Equal(t, k, d)
}
