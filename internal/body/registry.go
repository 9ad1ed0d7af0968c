package body

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/skyward/almanac/internal/astro"
	"github.com/skyward/almanac/internal/catalog"
	"github.com/skyward/almanac/internal/ephem"
	"github.com/skyward/almanac/internal/logging"
)

// standardBody describes one built-in object of the registry.
type standardBody struct {
	key    string
	typ    ObjectType
	name   string
	naif   int
	symbol string
}

// The ten bodies every installation knows, symbols per the Unicode
// astronomical set. Pluto files under minor planets these days.
var standardObjects = []standardBody{
	{"sun", Star, "The Sun", ephem.NAIFSun, "☉"},
	{"moon", Moon, "The Moon", ephem.NAIFMoon, "☽"},
	{"mercury", Planet, "Mercury", ephem.NAIFMercury, "☿"},
	{"venus", Planet, "Venus", ephem.NAIFVenus, "♀"},
	{"earth", Planet, "Earth", ephem.NAIFEarth, "♁"},
	{"mars", Planet, "Mars", ephem.NAIFMarsBary, "♂"},
	{"jupiter", Planet, "Jupiter", ephem.NAIFJupiterBary, "♃"},
	{"saturn", Planet, "Saturn", ephem.NAIFSaturnBary, "♄"},
	{"uranus", Planet, "Uranus", ephem.NAIFUranusBary, "♅"},
	{"neptune", Planet, "Neptune", ephem.NAIFNeptuneBary, "♆"},
	{"pluto", MinorPlanet, "Pluto", ephem.NAIFPlutoBary, "♇"},
}

// Registry builds celestial objects from an ephemeris provider and a
// catalog library. Built objects are memoized; a registry is safe for
// concurrent use.
type Registry struct {
	provider ephem.Provider
	library  *catalog.Library
	logger   *logging.Logger

	mu    sync.Mutex
	cache map[string]CelestialObject
}

// NewRegistry creates a registry.
func NewRegistry(provider ephem.Provider, library *catalog.Library, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Registry{
		provider: provider,
		library:  library,
		logger:   logger.Named("registry"),
		cache:    make(map[string]CelestialObject),
	}
}

// Standard returns a built-in body by key: "sun", "moon", "mercury"
// through "neptune", or "pluto".
func (r *Registry) Standard(key string) (CelestialObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if obj, ok := r.cache[key]; ok {
		return obj, nil
	}

	for _, sb := range standardObjects {
		if sb.key != key {
			continue
		}
		pos, err := ephem.Position(r.provider, sb.naif)
		if err != nil {
			return CelestialObject{}, err
		}
		opts := Options{NAIF: sb.naif, Symbol: sb.symbol}
		if sb.naif == ephem.NAIFEarth {
			opts.Surface = &astro.WGS84
		}
		obj := New(sb.typ, sb.name, pos, opts)
		r.cache[key] = obj
		return obj, nil
	}
	return CelestialObject{}, fmt.Errorf("no standard body %q", key)
}

// StandardKeys lists the built-in body keys in display order.
func StandardKeys() []string {
	keys := make([]string, len(standardObjects))
	for i, sb := range standardObjects {
		keys[i] = sb.key
	}
	return keys
}

// MinorPlanet builds an object for a catalog minor planet, e.g.
// "(2060) Chiron". The orbit is heliocentric, so the position rides on
// the Sun's.
func (r *Registry) MinorPlanet(designation string) (CelestialObject, error) {
	key := "mp:" + designation
	r.mu.Lock()
	if obj, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return obj, nil
	}
	r.mu.Unlock()

	mp, err := r.library.MinorPlanet(designation)
	if err != nil {
		return CelestialObject{}, err
	}

	sun, err := r.Standard("sun")
	if err != nil {
		return CelestialObject{}, err
	}

	el := ephem.Elements{
		SemiMajorAU:    mp.SemiMajorAU,
		Eccentricity:   mp.Eccentricity,
		InclinationDeg: mp.InclinationDeg,
		NodeDeg:        mp.NodeDeg,
		PerihelionDeg:  mp.PerihelionDeg,
		MeanAnomalyDeg: mp.MeanAnomalyDeg,
		EpochJD:        mp.EpochJD,
	}

	obj := New(MinorPlanet, mp.ShortName(), ephem.Offset(sun.Position, el.PositionAt), Options{
		Row: mp.Row(),
	})
	r.logger.Debug("built minor planet %s", designation)

	r.mu.Lock()
	r.cache[key] = obj
	r.mu.Unlock()
	return obj, nil
}

// Comet builds an object for a catalog comet, e.g. "1P/Halley".
func (r *Registry) Comet(designation string) (CelestialObject, error) {
	key := "comet:" + designation
	r.mu.Lock()
	if obj, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return obj, nil
	}
	r.mu.Unlock()

	c, err := r.library.Comet(designation)
	if err != nil {
		return CelestialObject{}, err
	}

	sun, err := r.Standard("sun")
	if err != nil {
		return CelestialObject{}, err
	}

	el := ephem.Elements{
		SemiMajorAU:    c.SemiMajorAU,
		Eccentricity:   c.Eccentricity,
		InclinationDeg: c.InclinationDeg,
		NodeDeg:        c.NodeDeg,
		PerihelionDeg:  c.PerihelionDeg,
		MeanAnomalyDeg: c.MeanAnomalyDeg,
		EpochJD:        c.EpochJD,
	}

	obj := New(Comet, c.ShortName(), ephem.Offset(sun.Position, el.PositionAt), Options{
		Row: c.Row(),
	})
	r.logger.Debug("built comet %s", designation)

	r.mu.Lock()
	r.cache[key] = obj
	r.mu.Unlock()
	return obj, nil
}

// Star builds an object for a named star, optionally within a naming
// culture. The position is the fixed catalog direction at the parallax
// distance.
func (r *Registry) Star(name, culture string) (CelestialObject, error) {
	key := "star:" + culture + ":" + name
	r.mu.Lock()
	if obj, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return obj, nil
	}
	r.mu.Unlock()

	st, names, err := r.library.StarByName(name, culture)
	if err != nil {
		return CelestialObject{}, err
	}

	obj := New(Star, name, starPosition(st), Options{
		Row:   st.Row(),
		Names: names,
	})

	r.mu.Lock()
	r.cache[key] = obj
	r.mu.Unlock()
	return obj, nil
}

// Observer builds a ground-site observer.
func (r *Registry) Observer(latDeg, lonDeg float64) (Observer, error) {
	site := astro.Observer{LatDeg: latDeg, LonDeg: lonDeg}
	pos, err := ephem.TopocentricObserver(r.provider, site)
	if err != nil {
		return Observer{}, err
	}
	return Observer{Position: pos, Site: &site}, nil
}

// starPosition returns a constant barycentric position for a star. Stars
// are so distant that parallax and proper motion are ignored here.
func starPosition(st catalog.Star) ephem.PositionFunc {
	raR := astro.DegToRad(st.RADeg)
	decR := astro.DegToRad(st.DecDeg)
	d := st.DistanceAU()

	eq := astro.Vec3{
		X: d * math.Cos(decR) * math.Cos(raR),
		Y: d * math.Cos(decR) * math.Sin(raR),
		Z: d * math.Sin(decR),
	}
	ecl := astro.EquatorialToEcliptic(eq)

	return func(time.Time) astro.Vec3 { return ecl }
}
