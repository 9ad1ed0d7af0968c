package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MinorPlanet is a reduced MPC orbit record: the osculating elements plus
// the (H, G) photometry the magnitude model consumes.
type MinorPlanet struct {
	Designation string // e.g. "(2060) Chiron"
	Name        string // e.g. "Chiron"

	H float64 // Absolute magnitude
	G float64 // Slope parameter

	EpochJD        float64
	SemiMajorAU    float64
	Eccentricity   float64
	InclinationDeg float64
	NodeDeg        float64
	PerihelionDeg  float64
	MeanAnomalyDeg float64
}

// Row exposes the photometric fields for model selection.
func (mp MinorPlanet) Row() Row {
	return RowOf(map[string]float64{
		"magnitude_H": mp.H,
		"magnitude_G": mp.G,
	})
}

// minor planet CSV columns, in order.
const mpColumns = 10

// ParseMinorPlanets reads a minor-planet dataset: CSV records
//
//	designation,name,H,G,epoch_jd,a_au,e,i_deg,node_deg,peri_deg,M_deg
//
// with '#' comment lines ignored. Records without an orbit (empty
// semi-major axis) are dropped, the way the raw MPCORB dump drops them.
func ParseMinorPlanets(r io.Reader) (map[string]MinorPlanet, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	out := make(map[string]MinorPlanet)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read minor planets: %w", err)
		}
		if len(rec) != mpColumns+1 {
			return nil, fmt.Errorf("minor planet record has %d columns, want %d", len(rec), mpColumns+1)
		}
		if strings.TrimSpace(rec[5]) == "" {
			continue // no orbit
		}

		nums := make([]float64, 9)
		for i := range nums {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+2]), 64)
			if err != nil {
				return nil, fmt.Errorf("minor planet %q column %d: %w", rec[0], i+3, err)
			}
			nums[i] = v
		}

		mp := MinorPlanet{
			Designation:    strings.TrimSpace(rec[0]),
			Name:           strings.TrimSpace(rec[1]),
			H:              nums[0],
			G:              nums[1],
			EpochJD:        nums[2],
			SemiMajorAU:    nums[3],
			Eccentricity:   nums[4],
			InclinationDeg: nums[5],
			NodeDeg:        nums[6],
			PerihelionDeg:  nums[7],
			MeanAnomalyDeg: nums[8],
		}
		out[mp.Designation] = mp
	}
	return out, nil
}

// ShortName derives a display name from a designation like
// "(2060) Chiron" when the record carries no explicit name.
func (mp MinorPlanet) ShortName() string {
	if mp.Name != "" {
		return mp.Name
	}
	if i := strings.Index(mp.Designation, ") "); i >= 0 {
		return mp.Designation[i+2:]
	}
	return mp.Designation
}
