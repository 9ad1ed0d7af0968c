package body

import (
	"time"

	"github.com/skyward/almanac/internal/astro"
	"github.com/skyward/almanac/internal/ephem"
	"github.com/skyward/almanac/internal/photometry"
)

// Observer is an observation site: its position function plus, when the
// observer sits on a body's surface, the geographic site itself.
type Observer struct {
	Position ephem.PositionFunc
	Site     *astro.Observer // nil for non-surface observers
}

// Observation is the transient result of evaluating one target from one
// observer at one time. Constructed fresh per Observe call and never
// mutated.
type Observation struct {
	// Target is the thing being observed.
	Target CelestialObject

	// Position is the target's astrometric position from the observer.
	Position astro.Astrometric

	// Magnitude is the apparent visual magnitude; MagnitudeValid is
	// false when no model was bound or the model is undefined at this
	// geometry.
	Magnitude      float64
	MagnitudeValid bool

	// Subpoint is the target's sub-observer point on the Earth at the
	// moment of observation.
	Subpoint astro.GeoPoint

	// Site is the observer's surface location, when known.
	Site *astro.Observer
}

// Observe evaluates a target from an observer at a time. It is a pure
// function of its inputs; the target is never mutated. The sub-observer
// point uses the topocentric direction, which for anything beyond the
// Moon is indistinguishable from the geocentric one.
func Observe(observer Observer, target CelestialObject, t time.Time) Observation {
	observerPos := observer.Position(t)
	relative := target.Position(t).Sub(observerPos)

	pos := astro.Astrometric{
		Observer: observerPos,
		Position: relative,
		Time:     t,
	}

	mag, ok := target.Magnitude(pos)

	eq := astro.EclipticToEquatorial(relative)
	subpoint := astro.WGS84.Subpoint(eq, t)

	return Observation{
		Target:         target,
		Position:       pos,
		Magnitude:      mag,
		MagnitudeValid: ok,
		Subpoint:       subpoint,
		Site:           observer.Site,
	}
}

// Time returns the moment of observation.
func (o Observation) Time() time.Time {
	return o.Position.Time
}

// DistanceKm returns the observer-to-target distance in kilometers.
func (o Observation) DistanceKm() float64 {
	return astro.AUToKm(o.Position.DistanceAU())
}

// Equatorial returns the target's topocentric right ascension and
// declination in degrees.
func (o Observation) Equatorial() (raDeg, decDeg float64) {
	return astro.RADec(astro.EclipticToEquatorial(o.Position.Position))
}

// Horizontal returns the target's altitude and azimuth for the observer's
// site. ok is false when the observer has no surface site.
func (o Observation) Horizontal() (astro.Horizontal, bool) {
	if o.Site == nil {
		return astro.Horizontal{}, false
	}
	ra, dec := o.Equatorial()
	return astro.EquatorialToHorizontal(ra, dec, *o.Site, o.Position.Time), true
}

// PhaseAngle returns the Sun-target-observer phase angle in degrees. ok
// is false for bodies whose magnitude model is not a reflecting one,
// where a phase angle has no meaning.
func (o Observation) PhaseAngle() (float64, bool) {
	if pa, ok := o.Target.Illumination.(photometry.PhaseAngler); ok {
		return pa.PhaseAngle(o.Position), true
	}
	return 0, false
}

// Ecliptic returns the target's geocentric ecliptic position, which
// carries the classical zodiacal-sector classification.
func (o Observation) Ecliptic() astro.EclipticPosition {
	return astro.EclipticPositionOf(o.Position.Position)
}

// SubpointDistanceKm returns the surface distance from the observer's
// site to the target's subpoint. ok is false without a surface site.
func (o Observation) SubpointDistanceKm() (float64, bool) {
	if o.Site == nil {
		return 0, false
	}
	site := astro.GeoPoint{LatDeg: o.Site.LatDeg, LonDeg: o.Site.LonDeg}
	return astro.WGS84.SurfaceDistance(site, o.Subpoint), true
}
