// Package body defines celestial objects and observations of them.
package body

import (
	"fmt"

	"github.com/skyward/almanac/internal/astro"
	"github.com/skyward/almanac/internal/ephem"
	"github.com/skyward/almanac/internal/photometry"
)

// ObjectType categorizes celestial objects.
type ObjectType int

const (
	Planet ObjectType = iota
	Star
	MinorPlanet
	Comet
	Moon
)

// String returns the object type name.
func (t ObjectType) String() string {
	switch t {
	case Planet:
		return "planet"
	case Star:
		return "star"
	case MinorPlanet:
		return "minor planet"
	case Comet:
		return "comet"
	case Moon:
		return "moon"
	default:
		return "unknown"
	}
}

// CelestialObject is an immutable descriptor of one body: its identity,
// its position function, and the magnitude model frozen in at
// construction. Instances are created once and reused read-only across
// any number of observations; nothing here is ever mutated.
type CelestialObject struct {
	Type ObjectType

	Name string

	// Symbol is the astronomical glyph, if one exists.
	Symbol string

	// OtherNames maps naming culture to an alternate name.
	OtherNames map[string]string

	// Position yields the body's barycentric position at a time.
	Position ephem.PositionFunc

	// Illumination is the magnitude model, or nil if no model applies.
	// Selected exactly once, at construction.
	Illumination photometry.IlluminatedBody

	// Surface is the body's reference ellipsoid, if known. Not used by
	// the magnitude machinery; passed through for surface-point work.
	Surface *astro.Geoid
}

// Options carries the optional arguments of New.
type Options struct {
	// NAIF is the body's NAIF identifier, when it has one; it drives the
	// major-body rule of model selection.
	NAIF int

	// Row is the body's catalog record, when one exists; it drives the
	// catalog rules of model selection.
	Row photometry.Parameters

	Names   map[string]string
	Symbol  string
	Surface *astro.Geoid
}

// New builds a celestial object, running model selection exactly once and
// freezing the result.
func New(typ ObjectType, name string, position ephem.PositionFunc, opts Options) CelestialObject {
	names := opts.Names
	if names == nil {
		names = map[string]string{}
	}
	return CelestialObject{
		Type:         typ,
		Name:         name,
		Symbol:       opts.Symbol,
		OtherNames:   names,
		Position:     position,
		Illumination: photometry.Select(opts.NAIF, opts.Row),
		Surface:      opts.Surface,
	}
}

// Magnitude returns the body's apparent magnitude at an observed
// position. ok is false both when no model was ever bound and when the
// bound model has no valid formula at this geometry; callers that need to
// tell the cases apart can inspect Illumination directly.
func (o CelestialObject) Magnitude(pos astro.Astrometric) (float64, bool) {
	if o.Illumination == nil {
		return 0, false
	}
	return o.Illumination.Magnitude(pos)
}

// ShortLabel prefers the glyph over the name.
func (o CelestialObject) ShortLabel() string {
	if o.Symbol != "" {
		return o.Symbol
	}
	return o.Name
}

// LongName is the name with the glyph appended when one exists.
func (o CelestialObject) LongName() string {
	if o.Symbol != "" {
		return fmt.Sprintf("%s (%s)", o.Name, o.Symbol)
	}
	return o.Name
}
