package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/skyward/almanac/internal/astro"
)

func TestKeplerProvider_Available(t *testing.T) {
	p := NewKeplerProvider()

	available := []int{
		NAIFMercuryBary, NAIFVenusBary, NAIFEMBary, NAIFMarsBary,
		NAIFJupiterBary, NAIFSaturnBary, NAIFUranusBary, NAIFNeptuneBary,
		NAIFPlutoBary, NAIFSun, NAIFMoon,
		NAIFMercury, NAIFVenus, NAIFEarth, NAIFMars,
	}
	for _, id := range available {
		if !p.Available(id) {
			t.Errorf("Available(%d) = false, want true", id)
		}
	}

	if p.Available(12345) {
		t.Error("Available(12345) = true, want false")
	}
}

func TestBarycentricPosition_HeliocentricDistances(t *testing.T) {
	p := NewKeplerProvider()
	testTime := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Distances must stay between perihelion and aphelion.
	tests := []struct {
		name     string
		naifID   int
		min, max float64 // AU
	}{
		{"mercury", NAIFMercuryBary, 0.30, 0.47},
		{"venus", NAIFVenusBary, 0.71, 0.74},
		{"earth", NAIFEarth, 0.98, 1.02},
		{"mars", NAIFMarsBary, 1.38, 1.67},
		{"jupiter", NAIFJupiterBary, 4.95, 5.46},
		{"saturn", NAIFSaturnBary, 9.0, 10.1},
		{"uranus", NAIFUranusBary, 18.3, 20.1},
		{"neptune", NAIFNeptuneBary, 29.8, 30.4},
		{"pluto", NAIFPlutoBary, 29.6, 49.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := p.BarycentricPosition(tt.naifID, testTime)
			if err != nil {
				t.Fatalf("BarycentricPosition() error = %v", err)
			}
			r := pos.Norm()
			if r < tt.min || r > tt.max {
				t.Errorf("distance = %v AU, want within [%v, %v]", r, tt.min, tt.max)
			}
		})
	}
}

func TestBarycentricPosition_Sun(t *testing.T) {
	p := NewKeplerProvider()
	pos, err := p.BarycentricPosition(NAIFSun, time.Now())
	if err != nil {
		t.Fatalf("BarycentricPosition(sun) error = %v", err)
	}
	if pos != (astro.Vec3{}) {
		t.Errorf("sun position = %v, want origin", pos)
	}
}

func TestBarycentricPosition_Moon(t *testing.T) {
	p := NewKeplerProvider()
	testTime := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	moon, err := p.BarycentricPosition(NAIFMoon, testTime)
	if err != nil {
		t.Fatalf("BarycentricPosition(moon) error = %v", err)
	}
	earth, err := p.BarycentricPosition(NAIFEarth, testTime)
	if err != nil {
		t.Fatalf("BarycentricPosition(earth) error = %v", err)
	}

	distKm := astro.AUToKm(moon.Sub(earth).Norm())
	if distKm < 356000 || distKm > 407000 {
		t.Errorf("earth-moon distance = %v km, want within [356000, 407000]", distKm)
	}
}

func TestBarycentricPosition_UnknownBody(t *testing.T) {
	p := NewKeplerProvider()
	if _, err := p.BarycentricPosition(12345, time.Now()); err == nil {
		t.Error("expected error for unknown body")
	}
}

func TestBarycentricPosition_EarthStaysNearEcliptic(t *testing.T) {
	p := NewKeplerProvider()

	for month := time.January; month <= time.December; month++ {
		testTime := time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC)
		pos, err := p.BarycentricPosition(NAIFEarth, testTime)
		if err != nil {
			t.Fatalf("BarycentricPosition() error = %v", err)
		}
		latDeg := astro.RadToDeg(math.Asin(pos.Z / pos.Norm()))
		if math.Abs(latDeg) > 0.01 {
			t.Errorf("earth ecliptic latitude in %v = %v°, want ~0", month, latDeg)
		}
	}
}

func TestSolveKepler(t *testing.T) {
	tests := []struct {
		name string
		m    float64 // mean anomaly, degrees
		ecc  float64
	}{
		{"circular", 45, 0},
		{"earth-like", 120, 0.0167},
		{"mercury-like", -60, 0.2056},
		{"pluto-like", 170, 0.2488},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			E := solveKepler(tt.m, tt.ecc)

			// Substituting back must recover the mean anomaly.
			eStar := astro.RadToDeg(tt.ecc)
			back := E - eStar*math.Sin(astro.DegToRad(E))
			if math.Abs(back-tt.m) > 1e-6 {
				t.Errorf("E=%v gives M=%v, want %v", E, back, tt.m)
			}
		})
	}
}

func TestSolveKepler_ZeroEccentricity(t *testing.T) {
	// With e=0 the eccentric anomaly is the mean anomaly.
	if got := solveKepler(73.5, 0); math.Abs(got-73.5) > 1e-12 {
		t.Errorf("solveKepler(73.5, 0) = %v, want 73.5", got)
	}
}

func TestElementsPositionAt(t *testing.T) {
	t.Run("circular orbit radius", func(t *testing.T) {
		el := Elements{
			SemiMajorAU: 2.5,
			EpochJD:     2451545.0,
		}
		pos := el.PositionAt(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
		if r := pos.Norm(); math.Abs(r-2.5) > 1e-9 {
			t.Errorf("radius = %v, want 2.5", r)
		}
	})

	t.Run("eccentric orbit stays within bounds", func(t *testing.T) {
		el := Elements{
			SemiMajorAU:    2.77,
			Eccentricity:   0.078,
			InclinationDeg: 10.6,
			NodeDeg:        80.3,
			PerihelionDeg:  73.6,
			MeanAnomalyDeg: 130.0,
			EpochJD:        2460200.5,
		}
		for months := 0; months < 60; months += 6 {
			pos := el.PositionAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0))
			r := pos.Norm()
			min := el.SemiMajorAU * (1 - el.Eccentricity)
			max := el.SemiMajorAU * (1 + el.Eccentricity)
			if r < min-1e-9 || r > max+1e-9 {
				t.Errorf("radius %v outside [%v, %v]", r, min, max)
			}
		}
	})

	t.Run("hyperbolic orbit yields zero vector", func(t *testing.T) {
		el := Elements{SemiMajorAU: 2, Eccentricity: 1.05, EpochJD: 2451545.0}
		if pos := el.PositionAt(time.Now()); pos != (astro.Vec3{}) {
			t.Errorf("hyperbolic orbit position = %v, want zero", pos)
		}
	})
}

func TestPosition_UnknownBodyFailsEarly(t *testing.T) {
	p := NewKeplerProvider()
	if _, err := Position(p, 12345); err == nil {
		t.Error("Position() should fail at bind time for an unknown body")
	}
}

func TestOffset(t *testing.T) {
	base := func(t time.Time) astro.Vec3 { return astro.Vec3{X: 1} }
	rel := func(t time.Time) astro.Vec3 { return astro.Vec3{Y: 2} }

	got := Offset(base, rel)(time.Now())
	if got != (astro.Vec3{X: 1, Y: 2}) {
		t.Errorf("Offset() = %v, want {1 2 0}", got)
	}
}

func TestWrapDeg180(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0, 0},
		{180, 180},
		{181, -179},
		{-180, 180},
		{360, 0},
		{540, 180},
		{-190, 170},
	}

	for _, tt := range tests {
		if got := wrapDeg180(tt.in); math.Abs(got-tt.out) > 1e-12 {
			t.Errorf("wrapDeg180(%v) = %v, want %v", tt.in, got, tt.out)
		}
	}
}
