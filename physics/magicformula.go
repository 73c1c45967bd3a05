// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/gre-42/mlib/math32"

// MagicFormulaMode selects how MagicFormulaArgmax clamps slip beyond
// its argmax: STANDARD follows the Pacejka curve all the way (which
// decreases again past the peak), NO_SLIP clamps friction at its peak
// magnitude so simulated tires do not "recover" grip at extreme slip.
type MagicFormulaMode int

const (
	Standard MagicFormulaMode = iota
	NoSlip
)

// MagicFormula is Pacejka's "Magic Formula" friction curve, with x in
// radians (not degrees, hence the non-standard default B=41 instead
// of the textbook 0.714 degrees^-1).
type MagicFormula struct {
	B, C, D, E float32
}

// DefaultMagicFormula returns the curve's standard tuning.
func DefaultMagicFormula() MagicFormula {
	return MagicFormula{B: 41, C: 1.4, D: 1, E: -0.2}
}

// Eval evaluates the curve at x: D*sin(C*atan(B*x - E*(B*x - atan(B*x)))).
func (mf MagicFormula) Eval(x float32) float32 {

	bx := mf.B * x
	return mf.D * math32.Sin(mf.C*math32.Atan(bx-mf.E*(bx-math32.Atan(bx))))
}

// MagicFormulaArgmax wraps a MagicFormula with its precomputed argmax
// (the smallest positive x at which the curve attains its maximum
// magnitude D), found once via an outward boundary scan followed by
// Newton's method on the derivative, then reused by every per-frame
// Eval call.
type MagicFormulaArgmax struct {
	MF     MagicFormula
	Argmax float32
}

// NewMagicFormulaArgmax computes the argmax of mf and returns the
// combined curve+argmax value.
func NewMagicFormulaArgmax(mf MagicFormula) MagicFormulaArgmax {

	x0 := findRightBoundaryOfMaximum(mf.Eval, 0, 1e-2)
	argmax := newton1D(mf.derivative, mf.secondDerivative, x0)
	return MagicFormulaArgmax{MF: mf, Argmax: argmax}
}

func (mf MagicFormula) derivative(x float32) float32 {
	const h = 1e-3
	return (mf.Eval(x+h) - mf.Eval(x-h)) / (2 * h)
}

func (mf MagicFormula) secondDerivative(x float32) float32 {
	const h = 1e-3
	return (mf.derivative(x+h) - mf.derivative(x-h)) / (2 * h)
}

// Eval evaluates the curve at x in the given mode.
func (a MagicFormulaArgmax) Eval(x float32, mode MagicFormulaMode) float32 {

	switch mode {
	case NoSlip:
		if math32.Abs(x) >= a.Argmax {
			return sign(x) * a.MF.D
		}
		return a.Eval(x, Standard)
	default:
		return a.MF.Eval(x)
	}
}

func sign(x float32) float32 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// findRightBoundaryOfMaximum scans outward from x0 in increasing steps
// until f starts decreasing, returning a point past the peak suitable
// as a Newton's-method starting guess for the derivative's root.
func findRightBoundaryOfMaximum(f func(float32) float32, x0, step float32) float32 {

	x := x0
	fx := f(x)
	s := step
	for i := 0; i < 64; i++ {
		next := x + s
		fNext := f(next)
		if fNext < fx {
			return next
		}
		x = next
		fx = fNext
		s *= 1.5
	}
	return x
}

// newton1D finds a root of df (the derivative) near x0 using Newton's
// method on df with derivative d2f, returning the argmax of the
// original function.
func newton1D(df, d2f func(float32) float32, x0 float32) float32 {

	x := x0
	for i := 0; i < 32; i++ {
		d2 := d2f(x)
		if math32.Abs(d2) < 1e-9 {
			break
		}
		next := x - df(x)/d2
		if math32.Abs(next-x) < 1e-6 {
			x = next
			break
		}
		x = next
	}
	return math32.Abs(x)
}

// CombinedMagicFormula composes a longitudinal and lateral slip curve
// into a single radially-normalized friction response (Brian Beckman,
// "The Physics Of Racing Series", Part 25): slip is normalized to each
// axis's own argmax, combined into a radius p, and the response is
// apportioned back along the original (longitudinal, lateral) slip
// ratio scaled by p.
type CombinedMagicFormula struct {
	Longitudinal MagicFormulaArgmax
	Lateral      MagicFormulaArgmax
}

// Eval returns the combined-slip friction response for slip
// (longitudinal, lateral).
func (c CombinedMagicFormula) Eval(slip [2]float32, mode MagicFormulaMode) [2]float32 {

	s0 := slip[0] / c.Longitudinal.Argmax
	s1 := slip[1] / c.Lateral.Argmax
	p := math32.Sqrt(s0*s0 + s1*s1)
	if p < 1e-9 {
		return [2]float32{0, 0}
	}
	return [2]float32{
		s0 / p * c.Longitudinal.Eval(p*c.Longitudinal.Argmax, mode),
		s1 / p * c.Lateral.Eval(p*c.Lateral.Argmax, mode),
	}
}
