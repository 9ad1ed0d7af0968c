package ephem

import (
	"math"
	"time"

	"github.com/skyward/almanac/internal/astro"
)

// earthFlattening and earthRadiusKm match the WGS84 ellipsoid.
const (
	earthRadiusKm   = 6378.137
	earthFlattening = 1.0 / 298.257223563
)

// TopocentricObserver returns a position function for a site on the
// Earth's surface: the Earth's barycentric position plus the site's
// geocentric offset rotated with the sidereal angle. Elevation above the
// ellipsoid is taken as zero; at AU scales it is invisible.
func TopocentricObserver(p Provider, site astro.Observer) (PositionFunc, error) {
	earth, err := Position(p, NAIFEarth)
	if err != nil {
		return nil, err
	}

	lat := astro.DegToRad(site.LatDeg)

	// Geocentric radius factors for the oblate Earth.
	omf2 := (1 - earthFlattening) * (1 - earthFlattening)
	denom := math.Sqrt(math.Cos(lat)*math.Cos(lat) + omf2*math.Sin(lat)*math.Sin(lat))
	cAxis := earthRadiusKm / denom        // parallel to the equator
	sAxis := earthRadiusKm * omf2 / denom // along the spin axis

	return func(t time.Time) astro.Vec3 {
		lst := astro.DegToRad(astro.LocalSiderealTime(t, site.LonDeg))

		// Site offset in the equatorial frame of date.
		eq := astro.Vec3{
			X: cAxis * math.Cos(lat) * math.Cos(lst),
			Y: cAxis * math.Cos(lat) * math.Sin(lst),
			Z: sAxis * math.Sin(lat),
		}

		offset := astro.EquatorialToEcliptic(eq.Scale(1 / astro.AU))
		return earth(t).Add(offset)
	}, nil
}
