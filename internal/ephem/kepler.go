package ephem

import (
	"fmt"
	"math"
	"time"

	"github.com/skyward/almanac/internal/astro"
)

// Elements is a heliocentric osculating orbit in the ecliptic J2000
// frame, angles in degrees.
type Elements struct {
	SemiMajorAU    float64
	Eccentricity   float64
	InclinationDeg float64
	NodeDeg        float64 // Longitude of the ascending node Ω
	PerihelionDeg  float64 // Argument of perihelion ω
	MeanAnomalyDeg float64 // Mean anomaly at epoch
	EpochJD        float64 // Epoch of the mean anomaly
}

// PositionAt propagates the elements to a time and returns the
// heliocentric ecliptic position in AU. Hyperbolic orbits (e >= 1) are
// not supported and yield a zero vector; validate before binding.
func (e Elements) PositionAt(t time.Time) astro.Vec3 {
	if e.Eccentricity >= 1 || e.SemiMajorAU <= 0 {
		return astro.Vec3{}
	}

	// Mean motion in degrees/day from Kepler's third law (Sun-dominated).
	period := 365.256898 * math.Pow(e.SemiMajorAU, 1.5)
	n := 360.0 / period

	days := astro.JulianDate(t) - e.EpochJD
	meanAnomaly := wrapDeg180(e.MeanAnomalyDeg + n*days)

	return orbitalToEcliptic(
		e.SemiMajorAU, e.Eccentricity,
		solveKepler(meanAnomaly, e.Eccentricity),
		e.PerihelionDeg, e.NodeDeg, e.InclinationDeg,
	)
}

// planetElements holds J2000 mean elements and centennial rates for a
// major body, after Standish, "Keplerian Elements for Approximate
// Positions of the Major Planets" (valid 1800 AD - 2050 AD). Angles in
// degrees; lonPeri is the longitude of perihelion ϖ = Ω + ω and meanLon
// is L = ϖ + M.
type planetElements struct {
	a, aDot       float64
	e, eDot       float64
	i, iDot       float64
	meanLon, lDot float64
	lonPeri, pDot float64
	node, nDot    float64
}

var planetTable = map[int]planetElements{
	NAIFMercuryBary: {
		0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081,
	},
	NAIFVenusBary: {
		0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418,
	},
	NAIFEMBary: {
		1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
		100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0.0, 0.0,
	},
	NAIFMarsBary: {
		1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343,
	},
	NAIFJupiterBary: {
		5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106,
	},
	NAIFSaturnBary: {
		9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794,
	},
	NAIFUranusBary: {
		19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589,
	},
	NAIFNeptuneBary: {
		30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664,
	},
	NAIFPlutoBary: {
		39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818,
		238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482,
	},
}

// planetAliases maps planet-center codes onto the barycenters the element
// table actually describes. Good to the accuracy of the mean elements.
var planetAliases = map[int]int{
	NAIFMercury: NAIFMercuryBary,
	NAIFVenus:   NAIFVenusBary,
	NAIFEarth:   NAIFEMBary,
	NAIFMars:    NAIFMarsBary,
}

// KeplerProvider propagates mean Keplerian elements for the Sun, the
// major planets, Pluto, and the Moon. It is stateless and safe for
// concurrent use.
type KeplerProvider struct{}

// NewKeplerProvider creates the built-in ephemeris provider.
func NewKeplerProvider() *KeplerProvider {
	return &KeplerProvider{}
}

// Name implements Provider.
func (p *KeplerProvider) Name() string { return "kepler" }

// Available implements Provider.
func (p *KeplerProvider) Available(naifID int) bool {
	if naifID == NAIFSun || naifID == NAIFMoon {
		return true
	}
	if _, ok := planetAliases[naifID]; ok {
		return true
	}
	_, ok := planetTable[naifID]
	return ok
}

// BarycentricPosition implements Provider.
func (p *KeplerProvider) BarycentricPosition(naifID int, t time.Time) (astro.Vec3, error) {
	switch naifID {
	case NAIFSun:
		// The Sun sits at the origin of this provider's frame.
		return astro.Vec3{}, nil
	case NAIFMoon:
		earth, err := p.BarycentricPosition(NAIFEarth, t)
		if err != nil {
			return astro.Vec3{}, err
		}
		return earth.Add(moonGeocentric(t)), nil
	}

	id := naifID
	if bary, ok := planetAliases[id]; ok {
		id = bary
	}
	el, ok := planetTable[id]
	if !ok {
		return astro.Vec3{}, fmt.Errorf("kepler ephemeris has no body %d", naifID)
	}

	T := astro.JulianCenturies(t)

	a := el.a + el.aDot*T
	ecc := el.e + el.eDot*T
	incl := el.i + el.iDot*T
	meanLon := el.meanLon + el.lDot*T
	lonPeri := el.lonPeri + el.pDot*T
	node := el.node + el.nDot*T

	argPeri := lonPeri - node
	meanAnomaly := wrapDeg180(meanLon - lonPeri)

	return orbitalToEcliptic(a, ecc, solveKepler(meanAnomaly, ecc), argPeri, node, incl), nil
}

// solveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly, with M in degrees. Newton's iteration converges in a handful
// of steps for every elliptic eccentricity in the tables.
func solveKepler(meanAnomalyDeg, ecc float64) float64 {
	eStar := astro.RadToDeg(ecc) // e in "degrees" for the iteration below

	E := meanAnomalyDeg + eStar*math.Sin(astro.DegToRad(meanAnomalyDeg))
	for i := 0; i < 10; i++ {
		dM := meanAnomalyDeg - (E - eStar*math.Sin(astro.DegToRad(E)))
		dE := dM / (1 - ecc*math.Cos(astro.DegToRad(E)))
		E += dE
		if math.Abs(dE) < 1e-8 {
			break
		}
	}
	return E
}

// orbitalToEcliptic rotates in-plane coordinates for an eccentric anomaly
// (degrees) through the argument of perihelion, inclination, and node
// into heliocentric ecliptic XYZ.
func orbitalToEcliptic(a, ecc, eccAnomalyDeg, argPeriDeg, nodeDeg, inclDeg float64) astro.Vec3 {
	E := astro.DegToRad(eccAnomalyDeg)
	xp := a * (math.Cos(E) - ecc)
	yp := a * math.Sqrt(1-ecc*ecc) * math.Sin(E)

	w := astro.DegToRad(argPeriDeg)
	om := astro.DegToRad(nodeDeg)
	in := astro.DegToRad(inclDeg)

	cosW, sinW := math.Cos(w), math.Sin(w)
	cosO, sinO := math.Cos(om), math.Sin(om)
	cosI, sinI := math.Cos(in), math.Sin(in)

	return astro.Vec3{
		X: (cosW*cosO-sinW*sinO*cosI)*xp + (-sinW*cosO-cosW*sinO*cosI)*yp,
		Y: (cosW*sinO+sinW*cosO*cosI)*xp + (-sinW*sinO+cosW*cosO*cosI)*yp,
		Z: sinW*sinI*xp + cosW*sinI*yp,
	}
}

// wrapDeg180 wraps an angle to (-180, 180].
func wrapDeg180(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
