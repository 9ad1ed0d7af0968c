package catalog

import (
	"math"
	"strings"
	"testing"
)

func TestParseStars(t *testing.T) {
	in := `# hip,ra_deg,dec_deg,magnitude,parallax_mas
32349,101.2872,-16.7161,-1.44,379.21
11767,37.9546,89.2641,1.97,7.56
`
	stars, err := ParseStars(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseStars() error = %v", err)
	}
	if len(stars) != 2 {
		t.Fatalf("parsed %d records, want 2", len(stars))
	}

	sirius, ok := stars[32349]
	if !ok {
		t.Fatal("Sirius missing from parsed map")
	}
	if math.Abs(sirius.Magnitude-(-1.44)) > 1e-12 {
		t.Errorf("Magnitude = %v, want -1.44", sirius.Magnitude)
	}
	if math.Abs(sirius.RADeg-101.2872) > 1e-12 {
		t.Errorf("RADeg = %v, want 101.2872", sirius.RADeg)
	}
}

func TestParseStars_DropsPositionlessRecords(t *testing.T) {
	in := `1,,0,5.0,10
2,10.5,20.5,6.0,5
`
	stars, err := ParseStars(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseStars() error = %v", err)
	}
	if len(stars) != 1 {
		t.Errorf("parsed %d records, want 1 (positionless dropped)", len(stars))
	}
}

func TestParseStars_Malformed(t *testing.T) {
	if _, err := ParseStars(strings.NewReader("notanumber,1,2,3,4\n")); err == nil {
		t.Error("expected an error for a non-numeric HIP")
	}
	if _, err := ParseStars(strings.NewReader("1,2,3\n")); err == nil {
		t.Error("expected an error for too few columns")
	}
}

func TestStarDistanceAU(t *testing.T) {
	t.Run("sirius", func(t *testing.T) {
		s := BrightStars[32349]
		// 379.21 mas puts Sirius about 2.64 pc out.
		pc := s.DistanceAU() / auPerParsec
		if math.Abs(pc-2.64) > 0.01 {
			t.Errorf("distance = %v pc, want ~2.64", pc)
		}
	})

	t.Run("non-positive parallax falls back to 1000 pc", func(t *testing.T) {
		for _, parallax := range []float64{0, -1} {
			s := Star{ParallaxMas: parallax}
			pc := s.DistanceAU() / auPerParsec
			if math.Abs(pc-1000) > 1e-9 {
				t.Errorf("parallax %v: distance = %v pc, want 1000", parallax, pc)
			}
		}
	})
}

func TestStarRow(t *testing.T) {
	row := Star{Magnitude: -1.44}.Row()
	if !row.Has("magnitude") {
		t.Error("row should carry magnitude")
	}
	if row.Has("magnitude_H") {
		t.Error("row should not carry minor-planet fields")
	}
}

func TestBrightStars(t *testing.T) {
	// Every built-in star is keyed by its own HIP number.
	for hip, s := range BrightStars {
		if s.HIP != hip {
			t.Errorf("BrightStars[%d].HIP = %d", hip, s.HIP)
		}
	}

	landmark := []int{32349, 91262, 11767} // Sirius, Vega, Polaris
	for _, hip := range landmark {
		if _, ok := BrightStars[hip]; !ok {
			t.Errorf("BrightStars missing HIP%d", hip)
		}
	}
}
