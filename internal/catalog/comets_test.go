package catalog

import (
	"math"
	"strings"
	"testing"
)

const cometSample = `# designation,name,g,k,epoch_jd,a_au,e,i_deg,node_deg,peri_deg,M_deg
1P/Halley,Halley,5.5,3.2,2460200.5,17.9341,0.9671,162.262,59.396,112.005,274.951
2P/Encke,Encke,11.5,6.0,2460200.5,2.2152,0.8483,11.344,334.442,187.123,201.511
`

func TestParseComets(t *testing.T) {
	cs, err := ParseComets(strings.NewReader(cometSample))
	if err != nil {
		t.Fatalf("ParseComets() error = %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("parsed %d records, want 2", len(cs))
	}

	halley, ok := cs["1P/Halley"]
	if !ok {
		t.Fatal("Halley missing from parsed map")
	}
	if halley.Name != "Halley" {
		t.Errorf("Name = %q, want Halley", halley.Name)
	}
	if math.Abs(halley.G-5.5) > 1e-12 || math.Abs(halley.K-3.2) > 1e-12 {
		t.Errorf("g, k = %v, %v, want 5.5, 3.2", halley.G, halley.K)
	}
	if math.Abs(halley.Eccentricity-0.9671) > 1e-12 {
		t.Errorf("Eccentricity = %v, want 0.9671", halley.Eccentricity)
	}
}

func TestParseComets_RejectsNonElliptic(t *testing.T) {
	in := `C/2017 U1,Oumuamua,22.0,4.0,2460200.5,1.3,1.201,122.742,24.597,241.811,0.0
`
	if _, err := ParseComets(strings.NewReader(in)); err == nil {
		t.Error("expected an error for e >= 1")
	}
}

func TestCometRow(t *testing.T) {
	c := Comet{G: 5.5, K: 3.2}
	row := c.Row()

	if !row.Has("magnitude_g") || !row.Has("magnitude_k") {
		t.Error("row should carry magnitude_g and magnitude_k")
	}
	if row.Has("magnitude_H") {
		t.Error("row should not carry the minor-planet fields")
	}
	if row.Value("magnitude_k") != 3.2 {
		t.Errorf("magnitude_k = %v, want 3.2", row.Value("magnitude_k"))
	}
}

func TestCometShortName(t *testing.T) {
	tests := []struct {
		name     string
		c        Comet
		expected string
	}{
		{"explicit name wins", Comet{Designation: "1P/Halley", Name: "Halley"}, "Halley"},
		{"derived from designation", Comet{Designation: "2P/Encke"}, "Encke"},
		{"bare designation", Comet{Designation: "X99"}, "X99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.ShortName(); got != tt.expected {
				t.Errorf("ShortName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
