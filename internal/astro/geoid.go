package astro

import (
	"math"
	"time"
)

// GeoPoint is a geographic location on a geoid surface.
type GeoPoint struct {
	LatDeg float64 // Geodetic latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
}

// Geoid is an oblate reference ellipsoid for a body's surface.
type Geoid struct {
	Name              string
	RadiusKm          float64 // Equatorial radius
	InverseFlattening float64
}

// WGS84 is the standard Earth reference ellipsoid.
var WGS84 = Geoid{
	Name:              "WGS84",
	RadiusKm:          6378.137,
	InverseFlattening: 298.257223563,
}

// Subpoint returns the geographic point directly beneath an equatorial
// direction vector at a given time: declination becomes latitude and the
// hour angle relative to Greenwich becomes longitude. The distance along
// the vector does not matter, only its direction.
func (g Geoid) Subpoint(eq Vec3, t time.Time) GeoPoint {
	ra, dec := RADec(eq)
	lon := ra - GreenwichMeanSiderealTime(t)

	// Wrap longitude to (-180, 180].
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}

	return GeoPoint{LatDeg: dec, LonDeg: lon}
}

// SurfaceDistance computes the surface distance in kilometers between two
// geographic points using Lambert's formula for long lines, which accounts
// for the ellipsoid flattening.
func (g Geoid) SurfaceDistance(a, b GeoPoint) float64 {
	omf := 1.0 - 1.0/g.InverseFlattening

	// Reduced latitudes.
	beta1 := math.Atan(omf * math.Tan(DegToRad(a.LatDeg)))
	beta2 := math.Atan(omf * math.Tan(DegToRad(b.LatDeg)))

	// Spherical central angle between the two points.
	cosSigma := math.Sin(beta1)*math.Sin(beta2) +
		math.Cos(beta1)*math.Cos(beta2)*math.Cos(DegToRad(b.LonDeg-a.LonDeg))
	if cosSigma > 1 {
		cosSigma = 1
	} else if cosSigma < -1 {
		cosSigma = -1
	}
	sigma := math.Acos(cosSigma)
	if sigma == 0 {
		return 0
	}

	sinSigma := math.Sin(sigma)

	p := (beta2 + beta1) / 2
	q := (beta2 - beta1) / 2

	xBase := math.Sin(p) * math.Cos(q) / math.Cos(sigma/2)
	yBase := math.Cos(p) * math.Sin(q) / math.Sin(sigma/2)

	x := (sigma - sinSigma) * xBase * xBase
	y := (sigma + sinSigma) * yBase * yBase

	arc := sigma - (x+y)/(2*g.InverseFlattening)

	return g.RadiusKm * arc
}
