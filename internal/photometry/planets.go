package photometry

import "math"

// Phase functions for the major planets, after Mallama & Hilton,
// "Computing Apparent Planetary Magnitudes for The Astronomical Almanac"
// (https://arxiv.org/pdf/1808.01973.pdf). In all of these polynomials the
// phase angle α really is in degrees.

// Mercury is valid at every phase angle.
var Mercury = ReflectingBody{name: "Mercury", q: mercuryPhase}

func mercuryPhase(p ReflectionParameters) (float64, bool) {
	return polynomial(p.Alpha,
		-0.613,
		6.3280e-02,
		-1.6336e-03,
		+3.3644e-05,
		-3.4265e-07,
		+1.6893e-09,
		-3.0334e-12,
	), true
}

// Venus switches fits at α = 163.7°; the high branch folds the low
// branch's α=0 coefficient into a +240.44228 constant shift.
var Venus = ReflectingBody{name: "Venus", q: venusPhase}

func venusPhase(p ReflectionParameters) (float64, bool) {
	if p.Alpha < 163.7 {
		return polynomial(p.Alpha, -4.384, -1.044e-3, 3.687e-4, -2.814e-6, 8.938e-9), true
	}
	return polynomial(p.Alpha, 240.44228-4.384, -2.81914, 8.39034e-3), true
}

// Earth is valid at every phase angle.
var Earth = ReflectingBody{name: "Earth", q: earthPhase}

func earthPhase(p ReflectionParameters) (float64, bool) {
	return polynomial(p.Alpha, -3.99, -1.06e-3, 2.054e-4), true
}

// Mars has two fitted branches meeting at 50° and no data beyond 120°.
var Mars = ReflectingBody{name: "Mars", q: marsPhase}

func marsPhase(p ReflectionParameters) (float64, bool) {
	switch {
	case p.Alpha <= 50:
		return polynomial(p.Alpha, -1.601, 2.267e-2, -1.302e-4), true
	case p.Alpha <= 120:
		return polynomial(p.Alpha, -1.601+1.234, -2.573e-2, 3.445e-4), true
	default:
		return 0, false
	}
}

// Jupiter uses a polynomial fit below 12° and a normalized-angle form
// beyond it.
var Jupiter = ReflectingBody{name: "Jupiter", q: jupiterPhase}

func jupiterPhase(p ReflectionParameters) (float64, bool) {
	if p.Alpha < 12 {
		return polynomial(p.Alpha, -9.395, -3.7e-4, 6.16e-4), true
	}
	poly := polynomial(p.Alpha/180, 1, -1.507, -0.363, -0.062, 2.809, -1.876)
	return -9.395 - 0.033 - 2.5*math.Log10(poly), true
}

// Saturn carries a ring-inclination term at small phase angles. The ring
// latitude β is a fixed placeholder of zero until ring geometry is
// computed from the pole orientation; see DESIGN.md.
var Saturn = ReflectingBody{name: "Saturn", q: saturnPhase}

func saturnPhase(p ReflectionParameters) (float64, bool) {
	beta := 0.0 // TODO: derive the ring-plane latitude from the pole orientation
	switch {
	case p.Alpha < 6.5:
		betaFactor := -math.Sin(beta) * (1.825 + 0.378*math.Exp(-2.25*p.Alpha))
		return -8.914 + 2.6e-2*p.Alpha + betaFactor, true
	case p.Alpha < 150:
		return polynomial(p.Alpha, -8.914+0.026, 2.446e-4, 2.672e-2, -1.505e-6, 4.767e-9), true
	default:
		// No usable model for Saturn's brightness at these angles.
		return 0, false
	}
}

// Uranus only has data near opposition. The sub-observer pole angle φ′ is
// a fixed placeholder of zero; see DESIGN.md.
var Uranus = ReflectingBody{name: "Uranus", q: uranusPhase}

func uranusPhase(p ReflectionParameters) (float64, bool) {
	phiPrime := 0.0 // TODO: derive from the sub-observer latitude on Uranus
	if p.Alpha < 3.1 {
		return -8.4e-4*phiPrime + polynomial(p.Alpha, -7.110, 6.587e-3, 1.045e-4), true
	}
	return 0, false
}

// Neptune brightened measurably through the 20th century; the fit only
// holds for observations from the year 2000 onward, and needs a timestamp
// to decide.
var Neptune = ReflectingBody{name: "Neptune", q: neptunePhase}

func neptunePhase(p ReflectionParameters) (float64, bool) {
	if p.Alpha < 133 && !p.Position.Time.IsZero() && p.Position.Time.UTC().Year() >= 2000 {
		return polynomial(p.Alpha, -7.00, 7.944e-3, 9.617e-5), true
	}
	return 0, false
}
