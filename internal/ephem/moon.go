package ephem

import (
	"math"
	"time"

	"github.com/skyward/almanac/internal/astro"
)

// moonGeocentric returns the Moon's geocentric ecliptic position in AU
// using the low-precision series from the Astronomical Almanac. Good to
// about 0.3° in longitude and 0.2° in parallax, which is ample for
// magnitude geometry and charting.
func moonGeocentric(t time.Time) astro.Vec3 {
	T := astro.JulianCenturies(t)

	sinD := func(deg float64) float64 { return math.Sin(astro.DegToRad(deg)) }
	cosD := func(deg float64) float64 { return math.Cos(astro.DegToRad(deg)) }

	// Ecliptic longitude in degrees.
	lon := 218.32 + 481267.881*T +
		6.29*sinD(135.0+477198.87*T) -
		1.27*sinD(259.3-413335.36*T) +
		0.66*sinD(235.7+890534.22*T) +
		0.21*sinD(269.9+954397.74*T) -
		0.19*sinD(357.5+35999.05*T) -
		0.11*sinD(186.5+966404.03*T)

	// Ecliptic latitude in degrees.
	lat := 5.13*sinD(93.3+483202.02*T) +
		0.28*sinD(228.2+960400.89*T) -
		0.28*sinD(318.3+6003.15*T) -
		0.17*sinD(217.6-407332.21*T)

	// Horizontal parallax in degrees gives the distance.
	parallax := 0.9508 +
		0.0518*cosD(135.0+477198.87*T) +
		0.0095*cosD(259.3-413335.36*T) +
		0.0078*cosD(235.7+890534.22*T) +
		0.0028*cosD(269.9+954397.74*T)

	distKm := 6378.137 / sinD(parallax)

	lonR := astro.DegToRad(lon)
	latR := astro.DegToRad(lat)
	r := astro.KmToAU(distKm)

	return astro.Vec3{
		X: r * math.Cos(latR) * math.Cos(lonR),
		Y: r * math.Cos(latR) * math.Sin(lonR),
		Z: r * math.Sin(latR),
	}
}
