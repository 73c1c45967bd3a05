package physics

import (
	"testing"

	"github.com/gre-42/mlib/math32"
	"github.com/stretchr/testify/assert"
)

func TestMagicFormulaZeroAtZero(t *testing.T) {

	mf := DefaultMagicFormula()
	assert.InDelta(t, 0, mf.Eval(0), 1e-6)
}

func TestMagicFormulaIsOdd(t *testing.T) {

	mf := DefaultMagicFormula()
	for _, x := range []float32{0.01, 0.05, 0.2, 0.5, 1.0} {
		assert.InDelta(t, mf.Eval(x), -mf.Eval(-x), 1e-4)
	}
}

func TestMagicFormulaBoundedByD(t *testing.T) {

	mf := DefaultMagicFormula()
	for _, x := range []float32{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0} {
		assert.LessOrEqual(t, math32.Abs(mf.Eval(x)), mf.D+1e-4)
	}
}

func TestMagicFormulaArgmaxClampsInNoSlipMode(t *testing.T) {

	a := NewMagicFormulaArgmax(DefaultMagicFormula())
	beyond := a.Argmax * 5
	assert.InDelta(t, a.MF.D, a.Eval(beyond, NoSlip), 1e-4)
	assert.InDelta(t, -a.MF.D, a.Eval(-beyond, NoSlip), 1e-4)
}

func TestCombinedMagicFormulaPureLongitudinal(t *testing.T) {

	c := CombinedMagicFormula{
		Longitudinal: NewMagicFormulaArgmax(DefaultMagicFormula()),
		Lateral:      NewMagicFormulaArgmax(DefaultMagicFormula()),
	}
	result := c.Eval([2]float32{c.Longitudinal.Argmax, 0}, Standard)
	assert.InDelta(t, 0, result[1], 1e-4)
	assert.Greater(t, result[0], float32(0))
}
