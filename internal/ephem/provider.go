// Package ephem computes barycentric positions for solar system bodies.
//
// Positions are heliocentric ecliptic J2000 vectors in AU, with the Sun
// approximated at the solar system barycenter. Accuracy is that of the
// propagated mean elements (arcminutes over 1800-2050), which is plenty
// for magnitude work and naked-eye charting.
package ephem

import (
	"fmt"
	"time"

	"github.com/skyward/almanac/internal/astro"
)

// Standard NAIF identifiers for the bodies the Kepler provider knows.
const (
	NAIFMercuryBary = 1
	NAIFVenusBary   = 2
	NAIFEMBary      = 3
	NAIFMarsBary    = 4
	NAIFJupiterBary = 5
	NAIFSaturnBary  = 6
	NAIFUranusBary  = 7
	NAIFNeptuneBary = 8
	NAIFPlutoBary   = 9
	NAIFSun         = 10
	NAIFMercury     = 199
	NAIFVenus       = 299
	NAIFMoon        = 301
	NAIFEarth       = 399
	NAIFMars        = 499
)

// PositionFunc yields a body's barycentric ecliptic position in AU at a
// time. Bound once into a celestial object and then treated as opaque.
type PositionFunc func(t time.Time) astro.Vec3

// Provider is an ephemeris source.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// BarycentricPosition returns the barycentric ecliptic position in AU
	// of a body at a time.
	BarycentricPosition(naifID int, t time.Time) (astro.Vec3, error)

	// Available returns true if this provider can supply the body.
	Available(naifID int) bool
}

// Position binds a single body of a provider into a PositionFunc.
// It returns an error immediately if the provider cannot supply the body,
// so the failure surfaces at construction rather than at observation time.
func Position(p Provider, naifID int) (PositionFunc, error) {
	if !p.Available(naifID) {
		return nil, fmt.Errorf("ephemeris %s has no body %d", p.Name(), naifID)
	}
	return func(t time.Time) astro.Vec3 {
		pos, err := p.BarycentricPosition(naifID, t)
		if err != nil {
			// Providers backed by pure propagation cannot fail for a
			// body they declared available.
			return astro.Vec3{}
		}
		return pos
	}, nil
}

// Offset returns a position function displaced from a base function, for
// orbits given relative to another body (e.g. heliocentric comet orbits).
func Offset(base PositionFunc, relative PositionFunc) PositionFunc {
	return func(t time.Time) astro.Vec3 {
		return base(t).Add(relative(t))
	}
}
