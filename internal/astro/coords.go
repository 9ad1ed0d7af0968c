package astro

import (
	"math"
	"time"
)

// Observer represents a ground-based observation site.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Horizontal holds observer-relative horizontal coordinates.
type Horizontal struct {
	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation/Altitude in degrees (0=horizon, 90=zenith)
}

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec, degrees)
// to horizontal coordinates for a given observer and time.
//
// Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Elevation: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(raDeg, decDeg float64, obs Observer, t time.Time) Horizontal {
	lat := DegToRad(obs.LatDeg)
	ra := DegToRad(raDeg)
	dec := DegToRad(decDeg)

	lst := LocalSiderealTime(t, obs.LonDeg)
	ha := DegToRad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	// Clamp to [-1, 1] against floating point error.
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}

	az := math.Acos(cosAz)
	// Positive hour angle puts the target west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AzDeg: RadToDeg(az),
		ElDeg: RadToDeg(alt),
	}
}

// AngularSeparation calculates the angular separation in degrees between
// two points on the celestial sphere, all coordinates in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	a1 := DegToRad(ra1)
	d1 := DegToRad(dec1)
	a2 := DegToRad(ra2)
	d2 := DegToRad(dec2)

	// Vincenty formula, stable at small and large separations.
	dRA := a2 - a1
	num := math.Hypot(
		math.Cos(d2)*math.Sin(dRA),
		math.Cos(d1)*math.Sin(d2)-math.Sin(d1)*math.Cos(d2)*math.Cos(dRA),
	)
	den := math.Sin(d1)*math.Sin(d2) + math.Cos(d1)*math.Cos(d2)*math.Cos(dRA)

	return RadToDeg(math.Atan2(num, den))
}
