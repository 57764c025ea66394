package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/alexthie/cqs-machine-learning/scale"
)

// TestScaler_NotFitted verifies Transform and InverseTransform require Fit.
func TestScaler_NotFitted(t *testing.T) {
	s := scale.NewScaler()
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := s.Transform(x)
	assert.ErrorIs(t, err, scale.ErrNotFitted)

	_, err = s.InverseTransform(x)
	assert.ErrorIs(t, err, scale.ErrNotFitted)

	assert.Nil(t, s.Mean(), "no statistics before Fit")
	assert.Nil(t, s.StdDev())
}

// TestScaler_FitTransform_ZeroMeanUnitStd verifies the core invariant:
// every standardized column has mean 0 and sample standard deviation 1.
func TestScaler_FitTransform_ZeroMeanUnitStd(t *testing.T) {
	x := mat.NewDense(5, 3, []float64{
		1, 100, -7,
		2, 250, -6,
		3, 175, -9,
		4, 300, -2,
		5, 125, -4,
	})

	s := scale.NewScaler()
	z, err := s.FitTransform(x)
	require.NoError(t, err)

	n, d := z.Dims()
	require.Equal(t, 5, n)
	require.Equal(t, 3, d)

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, z)
		m, sd := stat.MeanStdDev(col, nil)
		assert.InDelta(t, 0, m, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1, sd, 1e-12, "column %d std", j)
	}
}

// TestScaler_PopulationStd verifies the ddof=0 convention.
func TestScaler_PopulationStd(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	s := scale.NewScaler(scale.WithPopulationStd())
	require.NoError(t, s.Fit(x))

	col := []float64{2, 4, 6, 8}
	want := stat.PopStdDev(col, nil)
	assert.InDelta(t, want, s.StdDev()[0], 1e-12)

	z, err := s.Transform(x)
	require.NoError(t, err)
	zc := make([]float64, 4)
	mat.Col(zc, 0, z)
	assert.InDelta(t, 1, stat.PopStdDev(zc, nil), 1e-12, "population std of standardized column")
}

// TestScaler_ZeroVarianceLenient verifies constant columns map to all-zeros
// by default, with divisor 1.
func TestScaler_ZeroVarianceLenient(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		7, 1,
		7, 2,
		7, 3,
	})

	s := scale.NewScaler()
	z, err := s.FitTransform(x)
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.StdDev()[0], "constant column divisor is forced to 1")
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, z.At(i, 0), "constant column standardizes to zero")
	}
}

// TestScaler_ZeroVarianceStrict verifies WithStrictVariance fails fast.
func TestScaler_ZeroVarianceStrict(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{7, 7, 7})

	s := scale.NewScaler(scale.WithStrictVariance())
	err := s.Fit(x)
	assert.ErrorIs(t, err, scale.ErrZeroVariance)
}

// TestScaler_InverseRoundTrip verifies InverseTransform(Transform(x)) == x.
func TestScaler_InverseRoundTrip(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1.5, -3,
		2.5, 18,
		0.5, 4,
		9.0, -11,
	})

	s := scale.NewScaler()
	z, err := s.FitTransform(x)
	require.NoError(t, err)

	back, err := s.InverseTransform(z)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(x, back, 1e-12), "round trip must recover the input")
}

// TestScaler_DimensionMismatch verifies width checks on both directions.
func TestScaler_DimensionMismatch(t *testing.T) {
	s := scale.NewScaler()
	require.NoError(t, s.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))

	wide := mat.NewDense(2, 3, nil)
	_, err := s.Transform(wide)
	assert.ErrorIs(t, err, scale.ErrDimensionMismatch)

	_, err = s.InverseTransform(wide)
	assert.ErrorIs(t, err, scale.ErrDimensionMismatch)
}

// TestScaler_RejectsNonFinite verifies Fit refuses NaN/Inf cells.
func TestScaler_RejectsNonFinite(t *testing.T) {
	s := scale.NewScaler()

	err := s.Fit(mat.NewDense(2, 1, []float64{1, math.NaN()}))
	assert.ErrorIs(t, err, scale.ErrNonFinite)

	err = s.Fit(mat.NewDense(2, 1, []float64{1, math.Inf(1)}))
	assert.ErrorIs(t, err, scale.ErrNonFinite)
}

// TestScaler_NilAndEmpty verifies the shared matrix preconditions.
func TestScaler_NilAndEmpty(t *testing.T) {
	s := scale.NewScaler()

	assert.ErrorIs(t, s.Fit(nil), scale.ErrNilMatrix)
	assert.ErrorIs(t, s.Fit(&mat.Dense{}), scale.ErrEmptyMatrix)
}

// TestScaler_Refit verifies that a second Fit replaces the statistics.
func TestScaler_Refit(t *testing.T) {
	s := scale.NewScaler()
	require.NoError(t, s.Fit(mat.NewDense(2, 1, []float64{0, 2})))
	first := s.Mean()[0]

	require.NoError(t, s.Fit(mat.NewDense(2, 1, []float64{10, 30})))
	assert.NotEqual(t, first, s.Mean()[0], "refit must replace the learned mean")
	assert.InDelta(t, 20, s.Mean()[0], 1e-12)
}
