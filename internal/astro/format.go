package astro

import (
	"fmt"
	"math"
)

// pcPerAU is the fraction of a parsec covered by one AU.
const pcPerAU = math.Pi / 648000

// FormatAngleDM renders an angle as degrees and arcminutes, e.g. "23°26'".
func FormatAngleDM(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d := int(deg)
	m := int(math.Round((deg - float64(d)) * 60))
	if m == 60 {
		d++
		m = 0
	}
	return fmt.Sprintf("%s%d°%02d'", sign, d, m)
}

// FormatAngleDMS renders an angle as degrees, arcminutes, and arcseconds.
func FormatAngleDMS(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d := int(deg)
	rem := (deg - float64(d)) * 60
	m := int(rem)
	s := (rem - float64(m)) * 60
	return fmt.Sprintf("%s%d°%02d'%04.1f\"", sign, d, m, s)
}

// FormatLatitude renders a latitude with an N/S suffix.
func FormatLatitude(latDeg float64) string {
	if latDeg < 0 {
		return FormatAngleDM(-latDeg) + "S"
	}
	return FormatAngleDM(latDeg) + "N"
}

// FormatLongitude renders a longitude with an E/W suffix.
func FormatLongitude(lonDeg float64) string {
	if lonDeg < 0 {
		return FormatAngleDM(-lonDeg) + "W"
	}
	return FormatAngleDM(lonDeg) + "E"
}

// FormatLatLon renders a geographic point.
func FormatLatLon(p GeoPoint) string {
	return FormatLatitude(p.LatDeg) + " " + FormatLongitude(p.LonDeg)
}

// FormatDistance renders a distance given in kilometers with a unit that
// suits its scale: meters for nearby points, kilometers within the
// Earth-Moon neighborhood, then AU, then parsecs.
func FormatDistance(km float64) string {
	au := KmToAU(km)
	switch {
	case km < 5:
		return fmt.Sprintf("%dm", int(km*1000))
	case km < 1e7:
		return fmt.Sprintf("%dkm", int(km))
	case au < 100:
		return fmt.Sprintf("%0.2fau", au)
	case au < 100000:
		return fmt.Sprintf("%dau", int(au))
	default:
		pc := au * pcPerAU
		if pc < 100 {
			return fmt.Sprintf("%0.2fpc", pc)
		}
		return fmt.Sprintf("%dpc", int(pc))
	}
}
