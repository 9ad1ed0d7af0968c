package astro

import (
	"math"
	"testing"
)

func TestEclipticEquatorialRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"x axis", Vec3{X: 1}},
		{"y axis", Vec3{Y: 1}},
		{"z axis", Vec3{Z: 1}},
		{"arbitrary", Vec3{X: 0.3, Y: -1.7, Z: 2.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := EquatorialToEcliptic(EclipticToEquatorial(tt.v))
			if math.Abs(back.X-tt.v.X) > 1e-12 ||
				math.Abs(back.Y-tt.v.Y) > 1e-12 ||
				math.Abs(back.Z-tt.v.Z) > 1e-12 {
				t.Errorf("round trip = %v, want %v", back, tt.v)
			}
		})
	}
}

func TestFrameRotation_XAxisInvariant(t *testing.T) {
	// The x axis points at the equinox and is shared by both frames.
	v := Vec3{X: 1}
	if got := EclipticToEquatorial(v); got != v {
		t.Errorf("EclipticToEquatorial(x) = %v, want %v", got, v)
	}
	if got := EquatorialToEcliptic(v); got != v {
		t.Errorf("EquatorialToEcliptic(x) = %v, want %v", got, v)
	}
}

func TestFrameRotation_PreservesNorm(t *testing.T) {
	v := Vec3{X: 1.1, Y: -2.2, Z: 3.3}
	if got := EclipticToEquatorial(v).Norm(); math.Abs(got-v.Norm()) > 1e-12 {
		t.Errorf("norm changed: %v vs %v", got, v.Norm())
	}
}

func TestEclipticPole(t *testing.T) {
	// The ecliptic pole lies 23.44° from the celestial pole.
	pole := EclipticToEquatorial(Vec3{Z: 1})
	tilt := RadToDeg(AngleBetween(pole, Vec3{Z: 1}))
	if math.Abs(tilt-23.439291) > 1e-6 {
		t.Errorf("obliquity = %v°, want 23.439291°", tilt)
	}
}

func TestEclipticLatitudeLongitude(t *testing.T) {
	tests := []struct {
		name        string
		v           Vec3
		expectedLat float64
		expectedLon float64
	}{
		{"equinox direction", Vec3{X: 1}, 0, 0},
		{"90° longitude", Vec3{Y: 2}, 0, 90},
		{"anti-equinox", Vec3{X: -1}, 0, 180},
		{"negative y wraps", Vec3{Y: -1}, 0, 270},
		{"north ecliptic pole", Vec3{Z: 1}, 90, 0},
		{"45° up", Vec3{X: 1, Z: 1}, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat := EclipticLatitude(tt.v)
			lon := EclipticLongitude(tt.v)
			if math.Abs(lat-tt.expectedLat) > 1e-9 {
				t.Errorf("EclipticLatitude() = %v, want %v", lat, tt.expectedLat)
			}
			if math.Abs(lon-tt.expectedLon) > 1e-9 {
				t.Errorf("EclipticLongitude() = %v, want %v", lon, tt.expectedLon)
			}
		})
	}
}

func TestEclipticLatitude_ZeroVector(t *testing.T) {
	if got := EclipticLatitude(Vec3{}); got != 0 {
		t.Errorf("EclipticLatitude(0) = %v, want 0", got)
	}
}

func TestRADec(t *testing.T) {
	tests := []struct {
		name        string
		v           Vec3
		expectedRA  float64
		expectedDec float64
	}{
		{"equinox", Vec3{X: 1}, 0, 0},
		{"six hours", Vec3{Y: 1}, 90, 0},
		{"celestial pole", Vec3{Z: 1}, 0, 90},
		{"south pole", Vec3{Z: -1}, 0, -90},
		{"eighteen hours", Vec3{Y: -5}, 270, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec := RADec(tt.v)
			if math.Abs(ra-tt.expectedRA) > 1e-9 {
				t.Errorf("RA = %v, want %v", ra, tt.expectedRA)
			}
			if math.Abs(dec-tt.expectedDec) > 1e-9 {
				t.Errorf("Dec = %v, want %v", dec, tt.expectedDec)
			}
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		ra, dec := RADec(Vec3{})
		if ra != 0 || dec != 0 {
			t.Errorf("RADec(0) = %v, %v, want 0, 0", ra, dec)
		}
	})
}
