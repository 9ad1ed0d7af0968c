package astro

import "math"

// obliquityRad is the Earth's axial tilt at the J2000 epoch, in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// EquatorialToEcliptic converts equatorial XYZ to ecliptic XYZ.
// Input may be in any units; output is in the same units.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EclipticToEquatorial converts ecliptic XYZ to equatorial XYZ.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// EclipticLatitude returns the ecliptic latitude in degrees for an
// ecliptic-frame vector. A zero vector yields latitude 0.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return RadToDeg(math.Asin(v.Z / r))
}

// EclipticLongitude returns the ecliptic longitude in degrees, in
// [0, 360), for an ecliptic-frame vector.
func EclipticLongitude(v Vec3) float64 {
	lon := RadToDeg(math.Atan2(v.Y, v.X))
	if lon < 0 {
		lon += 360
	}
	return lon
}

// RADec returns the right ascension and declination in degrees for an
// equatorial-frame vector. RA is in [0, 360).
func RADec(eq Vec3) (raDeg, decDeg float64) {
	r := eq.Norm()
	if r == 0 {
		return 0, 0
	}
	raDeg = RadToDeg(math.Atan2(eq.Y, eq.X))
	if raDeg < 0 {
		raDeg += 360
	}
	decDeg = RadToDeg(math.Asin(eq.Z / r))
	return raDeg, decDeg
}
