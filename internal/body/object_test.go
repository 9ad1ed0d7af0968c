package body

import (
	"testing"
	"time"

	"github.com/skyward/almanac/internal/astro"
	"github.com/skyward/almanac/internal/catalog"
	"github.com/skyward/almanac/internal/photometry"
)

func fixedPosition(v astro.Vec3) func(time.Time) astro.Vec3 {
	return func(time.Time) astro.Vec3 { return v }
}

func TestObjectTypeString(t *testing.T) {
	tests := []struct {
		typ      ObjectType
		expected string
	}{
		{Planet, "planet"},
		{Star, "star"},
		{MinorPlanet, "minor planet"},
		{Comet, "comet"},
		{Moon, "moon"},
		{ObjectType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("ObjectType(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestNew_SelectsModelOnce(t *testing.T) {
	obj := New(Planet, "Jupiter", fixedPosition(astro.Vec3{X: 5.2}), Options{NAIF: 5})

	if obj.Illumination == nil {
		t.Fatal("expected a magnitude model for NAIF 5")
	}

	// The frozen model ignores later geometry-independent state: the same
	// position always produces the same magnitude.
	pos := astro.Astrometric{
		Observer: astro.Vec3{X: 1},
		Position: astro.Vec3{X: 4.2},
	}
	m1, ok1 := obj.Magnitude(pos)
	m2, ok2 := obj.Magnitude(pos)
	if !ok1 || !ok2 || m1 != m2 {
		t.Errorf("repeated magnitudes differ: (%v,%v) vs (%v,%v)", m1, ok1, m2, ok2)
	}
}

func TestNew_CatalogRowModel(t *testing.T) {
	row := catalog.RowOf(map[string]float64{
		"magnitude_H": 3.34,
		"magnitude_G": 0.12,
	})
	obj := New(MinorPlanet, "Ceres", fixedPosition(astro.Vec3{X: 2.8}), Options{Row: row})

	model, ok := obj.Illumination.(photometry.HGReflectingBody)
	if !ok {
		t.Fatalf("Illumination = %T, want HGReflectingBody", obj.Illumination)
	}
	if model.H != 3.34 || model.G != 0.12 {
		t.Errorf("model = %+v, want H=3.34 G=0.12", model)
	}
}

func TestMagnitude_NoModel(t *testing.T) {
	obj := New(Star, "Mystery", fixedPosition(astro.Vec3{X: 1}), Options{})

	if obj.Illumination != nil {
		t.Fatalf("Illumination = %v, want nil with no NAIF and no row", obj.Illumination)
	}

	mag, ok := obj.Magnitude(astro.Astrometric{Position: astro.Vec3{X: 1}})
	if ok {
		t.Errorf("Magnitude() = %v, true; want ok=false with no model", mag)
	}
}

func TestLabels(t *testing.T) {
	withSymbol := New(Planet, "Mars", fixedPosition(astro.Vec3{}), Options{Symbol: "♂"})
	if got := withSymbol.ShortLabel(); got != "♂" {
		t.Errorf("ShortLabel() = %q, want ♂", got)
	}
	if got := withSymbol.LongName(); got != "Mars (♂)" {
		t.Errorf("LongName() = %q, want %q", got, "Mars (♂)")
	}

	plain := New(Star, "Sirius", fixedPosition(astro.Vec3{}), Options{})
	if got := plain.ShortLabel(); got != "Sirius" {
		t.Errorf("ShortLabel() = %q, want Sirius", got)
	}
	if got := plain.LongName(); got != "Sirius" {
		t.Errorf("LongName() = %q, want Sirius", got)
	}
}

func TestNew_NamesDefaultEmpty(t *testing.T) {
	obj := New(Star, "Vega", fixedPosition(astro.Vec3{}), Options{})
	if obj.OtherNames == nil {
		t.Error("OtherNames should default to an empty map, not nil")
	}
}
