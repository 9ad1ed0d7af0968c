// Package photometry implements apparent-magnitude models for solar
// system bodies and stars.
//
// Every model satisfies IlluminatedBody: given an astrometric position it
// returns an apparent visual magnitude, or reports that no model applies
// at that geometry. The planetary phase polynomials are empirical curve
// fits valid only over the angular range where observational data exists;
// outside that range the honest answer is "undefined", not an
// extrapolation, and it is reported through the ok result rather than an
// error.
package photometry

import (
	"math"

	"github.com/skyward/almanac/internal/astro"
)

// logAUToPc is log10 of the number of parsecs in one AU.
var logAUToPc = math.Log10(math.Pi / 648000)

// IlluminatedBody is a magnitude model for a celestial body. Magnitude
// reports ok=false when the model has no valid formula for the given
// geometry or time.
type IlluminatedBody interface {
	Magnitude(pos astro.Astrometric) (mag float64, ok bool)
}

// PhaseAngler is implemented by reflecting-body models, for which a
// Sun-body-observer phase angle is meaningful.
type PhaseAngler interface {
	PhaseAngle(pos astro.Astrometric) float64
}

// DistantLuminousBody models objects whose apparent magnitude is
// effectively constant, like distant stars.
type DistantLuminousBody struct {
	M float64 // Apparent magnitude
}

// Magnitude implements IlluminatedBody.
func (b DistantLuminousBody) Magnitude(pos astro.Astrometric) (float64, bool) {
	return b.M, true
}

// ProximateLuminousBody models self-luminous bodies close enough that
// distance variation matters, like the Sun.
type ProximateLuminousBody struct {
	M float64 // Absolute magnitude
}

// Magnitude implements IlluminatedBody.
func (b ProximateLuminousBody) Magnitude(pos astro.Astrometric) (float64, bool) {
	return b.M + 5*(math.Log10(pos.DistanceAU())+logAUToPc-1), true
}

// ReflectionParameters holds the derived geometry every reflecting-body
// model consumes. They are recomputed per observation and never cached.
type ReflectionParameters struct {
	// Position is the underlying observed position.
	Position astro.Astrometric

	// R is the distance between the Sun and the body, in AU.
	R float64
	// Delta is the distance between the observer and the body, in AU.
	Delta float64
	// Alpha is the phase angle of the body, in degrees.
	Alpha float64
}

// DeriveReflection computes the reflection parameters for an observed
// position. The Sun is shamelessly treated as sitting at the solar system
// barycenter; the error this introduces is far below the accuracy of the
// phase polynomials. Degenerate input (an observer at the Sun itself)
// yields a NaN phase angle, which is propagated rather than repaired.
func DeriveReflection(pos astro.Astrometric) ReflectionParameters {
	sunToObserver := pos.Observer
	observerToBody := pos.Position
	sunToBody := sunToObserver.Add(observerToBody)

	return ReflectionParameters{
		Position: pos,
		R:        sunToBody.Norm(),
		Delta:    observerToBody.Norm(),
		Alpha:    astro.RadToDeg(astro.AngleBetween(sunToBody.Neg(), observerToBody.Neg())),
	}
}

// DistanceFactor returns the part of a reflector's magnitude that depends
// only on how far it sits from the Sun and from the observer.
func (p ReflectionParameters) DistanceFactor() float64 {
	return 5 * math.Log10(p.R*p.Delta)
}

// phaseFunc is the body-specific part of a reflector's magnitude: the sum
// of the absolute-magnitude and phase-angle terms. ok=false means the fit
// is not valid at this geometry.
type phaseFunc func(p ReflectionParameters) (float64, bool)

// ReflectingBody models bodies lit by reflected sunlight:
//
//	m = q(params) + distance factor
//
// where q is an empirical phase function. See
// https://en.wikipedia.org/wiki/Absolute_magnitude#Solar_System_bodies_(H)
type ReflectingBody struct {
	name string
	q    phaseFunc
}

// Magnitude implements IlluminatedBody.
func (b ReflectingBody) Magnitude(pos astro.Astrometric) (float64, bool) {
	params := DeriveReflection(pos)
	q, ok := b.q(params)
	if !ok {
		return 0, false
	}
	return q + params.DistanceFactor(), true
}

// PhaseAngle implements PhaseAngler.
func (b ReflectingBody) PhaseAngle(pos astro.Astrometric) float64 {
	return DeriveReflection(pos).Alpha
}

// Phase exposes the raw phase function, mainly for tests of branch
// boundaries.
func (b ReflectingBody) Phase(p ReflectionParameters) (float64, bool) {
	return b.q(p)
}

func (b ReflectingBody) String() string { return b.name }

// HGReflectingBody is the IAU two-parameter (H, G) phase law, the generic
// model for minor planets.
type HGReflectingBody struct {
	H float64 // Absolute magnitude
	G float64 // Slope parameter
}

// Magnitude implements IlluminatedBody.
func (b HGReflectingBody) Magnitude(pos astro.Astrometric) (float64, bool) {
	params := DeriveReflection(pos)
	q, _ := b.Phase(params)
	return q + params.DistanceFactor(), true
}

// Phase evaluates the two-term HG phase function. It is defined at every
// angle, so ok is always true.
func (b HGReflectingBody) Phase(p ReflectionParameters) (float64, bool) {
	halfTan := math.Tan(0.5 * astro.DegToRad(p.Alpha))
	phi1 := math.Exp(-3.33 * math.Pow(halfTan, 0.63))
	phi2 := math.Exp(-1.87 * math.Pow(halfTan, 1.22))
	angleFactor := -2.5 * math.Log((1-b.G)*phi1+b.G*phi2)

	return b.H + angleFactor, true
}

// PhaseAngle implements PhaseAngler.
func (b HGReflectingBody) PhaseAngle(pos astro.Astrometric) float64 {
	return DeriveReflection(pos).Alpha
}

// SolarActivatedBody models objects like comets whose brightness is
// powered by solar proximity. There is no phase-angle term at all;
// different k values are used for nuclear and total magnitudes.
type SolarActivatedBody struct {
	G float64 // Absolute total/nuclear magnitude
	K float64 // Brightness-law slope
}

// Magnitude implements IlluminatedBody.
func (b SolarActivatedBody) Magnitude(pos astro.Astrometric) (float64, bool) {
	params := DeriveReflection(pos)
	return b.G + 5*math.Log10(params.Delta) + 2.5*b.K*math.Log10(params.R), true
}

// polynomial evaluates Σ aₙxⁿ with coefficients in ascending power.
// Useful since most phase functions are polynomials.
func polynomial(x float64, coefficients ...float64) float64 {
	acc := 0.0
	xx := 1.0
	for _, c := range coefficients {
		acc += c * xx
		xx *= x
	}
	return acc
}
