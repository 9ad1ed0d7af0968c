package astro

import (
	"fmt"
	"math"
)

// Sign is one of the twelve 30°-wide zodiacal sectors of the ecliptic.
type Sign struct {
	Name   string
	Symbol string
}

// Zodiac lists the sectors in ecliptic-longitude order starting at 0°.
var Zodiac = [12]Sign{
	{"Ari", "♈"},
	{"Tau", "♉"},
	{"Gem", "♊"},
	{"Cnc", "♋"},
	{"Leo", "♌"},
	{"Vir", "♍"},
	{"Lib", "♎"},
	{"Sco", "♏"},
	{"Sgr", "♐"},
	{"Cap", "♑"},
	{"Aqr", "♒"},
	{"Psc", "♓"},
}

// EclipticPosition is a body's position in the ecliptic frame of date.
type EclipticPosition struct {
	LatDeg float64
	LonDeg float64
}

// EclipticPositionOf derives the ecliptic latitude and longitude of an
// ecliptic-frame direction vector.
func EclipticPositionOf(ecl Vec3) EclipticPosition {
	return EclipticPosition{
		LatDeg: EclipticLatitude(ecl),
		LonDeg: EclipticLongitude(ecl),
	}
}

// ClassicalLongitude classifies the longitude into its zodiacal sector and
// the remainder in degrees within that sector.
func (p EclipticPosition) ClassicalLongitude() (Sign, float64) {
	lon := math.Mod(p.LonDeg, 360)
	if lon < 0 {
		lon += 360
	}
	index := int(lon / 30)
	return Zodiac[index%12], lon - float64(index)*30
}

// ClassicalLongitudeString renders the longitude as degrees within a
// sector, e.g. "17°02' Leo". With symbolic set, the sector glyph is used.
func (p EclipticPosition) ClassicalLongitudeString(symbolic bool) string {
	sign, theta := p.ClassicalLongitude()
	label := sign.Name
	if symbolic {
		label = sign.Symbol
	}
	return fmt.Sprintf("%s %s", FormatAngleDM(theta), label)
}

// Phase returns the classical phase of this body in degrees, given the
// ecliptic position of the Sun: 0° when new, 90° at first quarter, 180°
// at full, 270° at waning quarter.
func (p EclipticPosition) Phase(sun EclipticPosition) float64 {
	phase := math.Mod(p.LonDeg-sun.LonDeg, 360)
	if phase < 0 {
		phase += 360
	}
	return phase
}

func (p EclipticPosition) String() string {
	return fmt.Sprintf("%s lat %s", p.ClassicalLongitudeString(false), FormatAngleDM(p.LatDeg))
}
