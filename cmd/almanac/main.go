// Command almanac reports the apparent magnitude, position, and phase
// state of celestial bodies as seen from a ground site.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/skyward/almanac/internal/body"
	"github.com/skyward/almanac/internal/catalog"
	"github.com/skyward/almanac/internal/ephem"
	"github.com/skyward/almanac/internal/logging"
	"github.com/skyward/almanac/internal/report"
	"github.com/skyward/almanac/internal/state"
	"github.com/skyward/almanac/internal/ui"
)

// envConfig carries environment-variable defaults; flags override them.
type envConfig struct {
	Lat      float64 `env:"ALMANAC_LAT" envDefault:"37.8694"`
	Lon      float64 `env:"ALMANAC_LON" envDefault:"-122.271"`
	DataDir  string  `env:"ALMANAC_DATA_DIR"`
	LogLevel string  `env:"ALMANAC_LOG_LEVEL" envDefault:"info"`
}

// defaultTargets matches the classic almanac page: the luminaries, the
// naked-eye planets, and the outer planets.
const defaultTargets = "sun,moon,mercury,venus,mars,jupiter,saturn,uranus,neptune,pluto"

func main() {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	lat := flag.Float64("lat", cfg.Lat, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", cfg.Lon, "Observer longitude in degrees (east positive)")
	when := flag.String("time", "", "Observation time, RFC3339 (default now)")
	targets := flag.String("targets", defaultTargets, "Comma-separated targets: standard body keys, star:<name>, mp:<designation>, comet:<designation>")
	dataDir := flag.String("data", cfg.DataDir, "Catalog data directory (minor_planets.csv, comets.csv, stars.csv, star_names/)")
	summary := flag.Bool("summary", false, "Print a summary table instead of the TUI")
	full := flag.Bool("full", false, "Print full per-body cards instead of the TUI")
	refresh := flag.Duration("refresh", state.DefaultRefreshInterval, "TUI refresh interval")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	at := time.Now()
	if *when != "" {
		parsed, err := time.Parse(time.RFC3339, *when)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -time: %v\n", err)
			os.Exit(1)
		}
		at = parsed
	}

	provider := ephem.NewKeplerProvider()
	library := catalog.NewLibrary(*dataDir, logger)
	registry := body.NewRegistry(provider, library, logger)

	observer, err := registry.Observer(*lat, *lon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building observer: %v\n", err)
		os.Exit(1)
	}

	objects, err := resolveTargets(registry, *targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Headless when asked for, or when stdout isn't a terminal.
	if *summary || *full || !term.IsTerminal(int(os.Stdout.Fd())) {
		observations := observeAll(observer, objects, at)
		if *full {
			for _, obs := range observations {
				report.WriteObservation(os.Stdout, obs)
				fmt.Println()
			}
			return
		}
		report.WriteSummaryTable(os.Stdout, observations, at)
		return
	}

	runTUI(observer, objects, *refresh, logger)
}

// resolveTargets builds the requested celestial objects.
func resolveTargets(registry *body.Registry, list string) ([]body.CelestialObject, error) {
	var objects []body.CelestialObject
	for _, raw := range strings.Split(list, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		var (
			obj body.CelestialObject
			err error
		)
		switch {
		case strings.HasPrefix(name, "star:"):
			obj, err = registry.Star(strings.TrimPrefix(name, "star:"), "")
		case strings.HasPrefix(name, "mp:"):
			obj, err = registry.MinorPlanet(strings.TrimPrefix(name, "mp:"))
		case strings.HasPrefix(name, "comet:"):
			obj, err = registry.Comet(strings.TrimPrefix(name, "comet:"))
		default:
			obj, err = registry.Standard(strings.ToLower(name))
		}
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", name, err)
		}
		objects = append(objects, obj)
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("no targets requested")
	}
	return objects, nil
}

// observeAll evaluates every object at one time.
func observeAll(observer body.Observer, objects []body.CelestialObject, at time.Time) []body.Observation {
	observations := make([]body.Observation, len(objects))
	for i, obj := range objects {
		observations[i] = body.Observe(observer, obj, at)
	}
	return observations
}

// runTUI starts the interactive dashboard with a background observe loop.
func runTUI(observer body.Observer, objects []body.CelestialObject, refresh time.Duration, logger *logging.Logger) {
	stateMgr := state.NewManager(refresh)
	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	done := make(chan struct{})
	go func() {
		observe := func() {
			at := time.Now()
			observations := observeAll(observer, objects, at)
			stateMgr.Update(observations, at, nil)
			p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
			logger.Debug("observed %d bodies", len(observations))
		}

		observe()
		ticker := time.NewTicker(stateMgr.RefreshInterval())
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				observe()
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	close(done)
}
