package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Comet is a reduced comet orbit record with the (g, k) brightness-law
// parameters. Only elliptic orbits are representable; near-parabolic
// records are rejected at parse time.
type Comet struct {
	Designation string // e.g. "1P/Halley"
	Name        string // e.g. "Halley"

	G float64 // Absolute magnitude of the brightness law
	K float64 // Brightness-law slope

	EpochJD        float64
	SemiMajorAU    float64
	Eccentricity   float64
	InclinationDeg float64
	NodeDeg        float64
	PerihelionDeg  float64
	MeanAnomalyDeg float64
}

// Row exposes the photometric fields for model selection. Note the
// lower-case field names; the comet convention differs from (H, G).
func (c Comet) Row() Row {
	return RowOf(map[string]float64{
		"magnitude_g": c.G,
		"magnitude_k": c.K,
	})
}

// ShortName derives a display name from a designation like "1P/Halley".
func (c Comet) ShortName() string {
	if c.Name != "" {
		return c.Name
	}
	if i := strings.Index(c.Designation, "/"); i >= 0 {
		return c.Designation[i+1:]
	}
	return c.Designation
}

// ParseComets reads a comet dataset: CSV records
//
//	designation,name,g,k,epoch_jd,a_au,e,i_deg,node_deg,peri_deg,M_deg
//
// with '#' comment lines ignored.
func ParseComets(r io.Reader) (map[string]Comet, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	out := make(map[string]Comet)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read comets: %w", err)
		}
		if len(rec) != 11 {
			return nil, fmt.Errorf("comet record has %d columns, want 11", len(rec))
		}

		nums := make([]float64, 9)
		for i := range nums {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+2]), 64)
			if err != nil {
				return nil, fmt.Errorf("comet %q column %d: %w", rec[0], i+3, err)
			}
			nums[i] = v
		}

		c := Comet{
			Designation:    strings.TrimSpace(rec[0]),
			Name:           strings.TrimSpace(rec[1]),
			G:              nums[0],
			K:              nums[1],
			EpochJD:        nums[2],
			SemiMajorAU:    nums[3],
			Eccentricity:   nums[4],
			InclinationDeg: nums[5],
			NodeDeg:        nums[6],
			PerihelionDeg:  nums[7],
			MeanAnomalyDeg: nums[8],
		}
		if c.Eccentricity >= 1 {
			return nil, fmt.Errorf("comet %q: eccentricity %.3f is not elliptic", c.Designation, c.Eccentricity)
		}
		out[c.Designation] = c
	}
	return out, nil
}
