package go_engunits_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gehtsoft-usa/go_engunits"
	"github.com/gehtsoft-usa/go_engunits/bmath/unit"
)

func TestGetR(t *testing.T) {
	r, err := go_engunits.GetR("Pa")
	require.NoError(t, err)
	assert.Equal(t, 8.314, r)

	expected := map[string]float64{
		"bar":  0.08314,
		"atm":  0.08206,
		"mmHg": 62.36,
		"atmR": 0.7302,
		"psi":  10.73,
		"J":    8.314,
		"cal":  1.987,
		"Btu":  1.987,
	}
	for label, value := range expected {
		r, err := go_engunits.GetR(label)
		require.NoError(t, err, label)
		assert.Equal(t, value, r, label)
	}

	r, err = go_engunits.GetR("bogus")
	assert.ErrorIs(t, err, unit.ErrUnsupportedUnit)
	assert.Equal(t, 0.0, r)
}

func TestRGasIsACopy(t *testing.T) {
	table := go_engunits.RGas()
	require.Len(t, table, 9)
	table[0].Value = 1

	r, err := go_engunits.GetR("Pa")
	require.NoError(t, err)
	assert.Equal(t, 8.314, r)
	assert.Equal(t, 8.314, go_engunits.RGas()[0].Value)
}

func TestRGasReport(t *testing.T) {
	expected := "\n" +
		"R Gas Constant:\n" +
		"\n" +
		"Units               Accessor    Value\n" +
		"--------------------------------------\n" +
		"m3-Pa/(mol-K)       Pa          8.314\n" +
		"L-bar/(mol-K)       bar         0.08314\n" +
		"L-atm/(mol-K)       atm         0.08206\n" +
		"L-mmHg/(mol-K)      mmHg        62.36\n" +
		"ft3-atm/(lbmol-R)   atmR        0.7302\n" +
		"ft3-psia/(lbmol-R)  psi         10.73\n" +
		"J/(mol-K)           J           8.314\n" +
		"cal/(mol-K)         cal         1.987\n" +
		"Btu/(lb-mol-R)      Btu         1.987"
	assert.Equal(t, expected, go_engunits.RGas().String())
}

func TestBilinearInterpolate(t *testing.T) {
	x := [2]float64{1, 3}
	y := [2]float64{10, 20}
	z := [2][2]float64{{1, 2}, {3, 4}}

	cases := []struct {
		point    [2]float64
		expected float64
	}{
		{[2]float64{1, 10}, 1},
		{[2]float64{1, 20}, 2},
		{[2]float64{3, 10}, 3},
		{[2]float64{3, 20}, 4},
		{[2]float64{2, 15}, 2.5},
		{[2]float64{5, 10}, 5},
		{[2]float64{1, 0}, 0},
	}
	for _, c := range cases {
		v, err := go_engunits.BilinearInterpolate(c.point, x, y, z)
		require.NoError(t, err)
		assert.Equal(t, c.expected, v, "at %v", c.point)
	}
}

func TestBilinearInterpolateCornerIsExact(t *testing.T) {
	z := [2][2]float64{{0.1, 0.7}, {1.3, 2.9}}
	v, err := go_engunits.BilinearInterpolate([2]float64{0.3, 1.7}, [2]float64{0.3, 0.9}, [2]float64{1.7, 4.1}, z)
	require.NoError(t, err)
	assert.Equal(t, 0.1, v)
}

func TestBilinearInterpolateDegenerateGrid(t *testing.T) {
	z := [2][2]float64{{1, 2}, {3, 4}}

	_, err := go_engunits.BilinearInterpolate([2]float64{1, 1}, [2]float64{1, 1}, [2]float64{0, 2}, z)
	assert.ErrorIs(t, err, go_engunits.ErrDivisionByZero)

	_, err = go_engunits.BilinearInterpolate([2]float64{1, 1}, [2]float64{0, 2}, [2]float64{1, 1}, z)
	assert.ErrorIs(t, err, go_engunits.ErrDivisionByZero)
}

func TestVirialPitzer(t *testing.T) {
	z, err := go_engunits.VirialPitzer(1, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.661, z, 1e-12)

	tr, pr, w := 2.0, 0.5, 0.2
	b0 := 0.083 - 0.422/math.Pow(tr, 1.6)
	b1 := 0.139 - 0.172/math.Pow(tr, 4.2)
	z, err = go_engunits.VirialPitzer(tr, pr, w)
	require.NoError(t, err)
	assert.Equal(t, 1+b0*pr/tr+w*b1*pr/tr, z)

	z, err = go_engunits.VirialPitzer(1.5, 0, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, z)
}

func TestVirialPitzerNoDomainCheck(t *testing.T) {
	_, err := go_engunits.VirialPitzer(0, 1, 0.1)
	assert.ErrorIs(t, err, go_engunits.ErrDivisionByZero)

	z, err := go_engunits.VirialPitzer(-1, 1, 0.1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(z))
}

func carbonDioxide(t *testing.T) go_engunits.Fluid {
	t.Helper()
	f, err := go_engunits.CreateFluid("CO2", 304.2, unit.MustCreateQuantity(73.83, unit.PressureBar), 0.224)
	require.NoError(t, err)
	return f
}

func TestFluidCompressibility(t *testing.T) {
	f := carbonDioxide(t)
	assert.Equal(t, "CO2:Tc:304.2K,Pc:73.83 bar,w:0.224", f.String())

	t0, tc, p0, pc := 350.0, 304.2, 10.0, 73.83
	expected, err := go_engunits.VirialPitzer(t0/tc, p0/pc, 0.224)
	require.NoError(t, err)

	z, err := f.Compressibility(350, unit.MustCreateQuantity(10, unit.PressureBar))
	require.NoError(t, err)
	assert.Equal(t, expected, z)

	pa := unit.MustCreateQuantity(10, unit.PressureBar).In(unit.PressurePascal)
	z, err = f.Compressibility(350, unit.MustCreateQuantity(pa, unit.PressurePascal))
	require.NoError(t, err)
	assert.InEpsilon(t, expected, z, 1e-9)

	v, err := f.MolarVolume(350, unit.MustCreateQuantity(10, unit.PressureBar))
	require.NoError(t, err)
	assert.InEpsilon(t, expected*8.314*350/1e6, v, 1e-9)
}

func TestFluidReducedState(t *testing.T) {
	f := carbonDioxide(t)
	assert.Equal(t, 1.0, f.ReducedTemperature(304.2))

	pr, err := f.ReducedPressure(unit.MustCreateQuantity(73.83, unit.PressureBar))
	require.NoError(t, err)
	assert.Equal(t, 1.0, pr)

	_, err = f.ReducedPressure(unit.MustCreateQuantity(1, unit.MassKilogram))
	assert.ErrorIs(t, err, unit.ErrInvalidUnitOutput)

	_, err = f.Compressibility(0, unit.MustCreateQuantity(1, unit.PressureBar))
	assert.ErrorIs(t, err, go_engunits.ErrDivisionByZero)
}

func TestCreateFluidValidation(t *testing.T) {
	bar := func(v float64) unit.Quantity { return unit.MustCreateQuantity(v, unit.PressureBar) }

	_, err := go_engunits.CreateFluid("x", 0, bar(1), 0)
	assert.ErrorIs(t, err, go_engunits.ErrInvalidFluid)

	_, err = go_engunits.CreateFluid("x", math.NaN(), bar(1), 0)
	assert.ErrorIs(t, err, go_engunits.ErrInvalidFluid)

	_, err = go_engunits.CreateFluid("x", 300, unit.MustCreateQuantity(1, unit.MassKilogram), 0)
	assert.ErrorIs(t, err, go_engunits.ErrInvalidFluid)

	_, err = go_engunits.CreateFluid("x", 300, bar(0), 0)
	assert.ErrorIs(t, err, go_engunits.ErrInvalidFluid)

	_, err = go_engunits.CreateFluid("x", 300, unit.Quantity{}, 0)
	assert.ErrorIs(t, err, go_engunits.ErrInvalidFluid)

	f, err := go_engunits.CreateFluid("water", 647.1, unit.MustCreateQuantity(220.55, unit.PressureBar), 0.345)
	require.NoError(t, err)
	assert.Equal(t, "water", f.Name())
	assert.Equal(t, 647.1, f.CriticalTemperature())
	assert.Equal(t, 0.345, f.AcentricFactor())
	assert.Equal(t, unit.PressureBar, f.CriticalPressure().Units())
}
