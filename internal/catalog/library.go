package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/skyward/almanac/internal/logging"
)

// Dataset file names expected under the library directory.
const (
	minorPlanetsFile = "minor_planets.csv"
	cometsFile       = "comets.csv"
	starsFile        = "stars.csv"
	starNamesDir     = "star_names"
)

// Library lazily loads and caches the catalog datasets of a data
// directory. Each dataset is read at most once until Reload; missing
// files fall back to the built-in tables where one exists.
type Library struct {
	dir    string
	logger *logging.Logger

	mu           sync.Mutex
	minorPlanets map[string]MinorPlanet
	comets       map[string]Comet
	stars        map[int]Star
	names        *StarNames
}

// NewLibrary creates a library over a data directory. An empty dir means
// built-in data only.
func NewLibrary(dir string, logger *logging.Logger) *Library {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Library{dir: dir, logger: logger.Named("catalog")}
}

// Reload drops every cached dataset so the next access re-reads it.
func (l *Library) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minorPlanets = nil
	l.comets = nil
	l.stars = nil
	l.names = nil
}

// MinorPlanet looks up a minor planet by designation, e.g. "(1) Ceres".
func (l *Library) MinorPlanet(designation string) (MinorPlanet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.minorPlanets == nil {
		mps, err := l.loadMinorPlanets()
		if err != nil {
			return MinorPlanet{}, err
		}
		l.minorPlanets = mps
	}
	mp, ok := l.minorPlanets[designation]
	if !ok {
		return MinorPlanet{}, fmt.Errorf("minor planet %q not in catalog", designation)
	}
	return mp, nil
}

// Comet looks up a comet by designation, e.g. "1P/Halley".
func (l *Library) Comet(designation string) (Comet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.comets == nil {
		cs, err := l.loadComets()
		if err != nil {
			return Comet{}, err
		}
		l.comets = cs
	}
	c, ok := l.comets[designation]
	if !ok {
		return Comet{}, fmt.Errorf("comet %q not in catalog", designation)
	}
	return c, nil
}

// Star looks up a star by Hipparcos number.
func (l *Library) Star(hip int) (Star, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureStarsLocked(); err != nil {
		return Star{}, err
	}
	s, ok := l.stars[hip]
	if !ok {
		return Star{}, fmt.Errorf("star HIP%d not in catalog", hip)
	}
	return s, nil
}

// StarByName resolves a common name (optionally within a culture) and
// returns the star together with all of its known names.
func (l *Library) StarByName(name, culture string) (Star, map[string]string, error) {
	l.mu.Lock()
	names := l.namesLocked()
	hip, ok := names.Find(name, culture)
	l.mu.Unlock()
	if !ok {
		return Star{}, nil, fmt.Errorf("no star named %q", name)
	}

	s, err := l.Star(hip)
	if err != nil {
		return Star{}, nil, err
	}
	return s, names.AllNames(hip), nil
}

// Names returns the star-name index.
func (l *Library) Names() *StarNames {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.namesLocked()
}

func (l *Library) namesLocked() *StarNames {
	if l.names == nil {
		l.names = BuiltinStarNames()
		if l.dir != "" {
			dir := filepath.Join(l.dir, starNamesDir)
			if _, err := os.Stat(dir); err == nil {
				if err := l.names.LoadDir(os.DirFS(l.dir), starNamesDir); err != nil {
					l.logger.Warn("loading star names: %v", err)
				}
			}
		}
		l.logger.Debug("star names ready: %d cultures", len(l.names.Cultures()))
	}
	return l.names
}

func (l *Library) ensureStarsLocked() error {
	if l.stars != nil {
		return nil
	}
	l.stars = make(map[int]Star, len(BrightStars))
	for hip, s := range BrightStars {
		l.stars[hip] = s
	}
	if l.dir == "" {
		return nil
	}
	path := filepath.Join(l.dir, starsFile)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open star catalog: %w", err)
	}
	defer f.Close()

	l.logger.Info("loading star catalog from %s", path)
	loaded, err := ParseStars(f)
	if err != nil {
		return err
	}
	for hip, s := range loaded {
		l.stars[hip] = s
	}
	l.logger.Info("loaded %d stars", len(loaded))
	return nil
}

func (l *Library) loadMinorPlanets() (map[string]MinorPlanet, error) {
	if l.dir == "" {
		return nil, fmt.Errorf("no catalog directory configured for minor planets")
	}
	path := filepath.Join(l.dir, minorPlanetsFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open minor planet catalog: %w", err)
	}
	defer f.Close()

	l.logger.Info("loading minor planets from %s", path)
	mps, err := ParseMinorPlanets(f)
	if err != nil {
		return nil, err
	}
	l.logger.Info("loaded %d minor planets", len(mps))
	return mps, nil
}

func (l *Library) loadComets() (map[string]Comet, error) {
	if l.dir == "" {
		return nil, fmt.Errorf("no catalog directory configured for comets")
	}
	path := filepath.Join(l.dir, cometsFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open comet catalog: %w", err)
	}
	defer f.Close()

	l.logger.Info("loading comets from %s", path)
	cs, err := ParseComets(f)
	if err != nil {
		return nil, err
	}
	l.logger.Info("loaded %d comets", len(cs))
	return cs, nil
}
