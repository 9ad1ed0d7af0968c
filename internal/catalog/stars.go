package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Star is a reduced Hipparcos-style record: a fixed J2000 direction, the
// catalog apparent magnitude, and the parallax that fixes its distance.
// Proper motion is ignored; over the tool's useful range it moves bright
// stars by arcseconds, well under the chart resolution.
type Star struct {
	HIP         int // Hipparcos catalog number
	RADeg       float64
	DecDeg      float64
	Magnitude   float64
	ParallaxMas float64
}

// Row exposes the scalar magnitude for model selection.
func (s Star) Row() Row {
	return RowOf(map[string]float64{"magnitude": s.Magnitude})
}

// auPerParsec is the number of AU in one parsec.
const auPerParsec = 648000 / math.Pi

// DistanceAU converts the parallax to a distance. Stars with a
// non-positive parallax get a nominal 1000 pc so they still chart.
func (s Star) DistanceAU() float64 {
	parallaxArcsec := s.ParallaxMas / 1000
	if parallaxArcsec <= 0 {
		return 1000 * auPerParsec
	}
	// Distance in parsecs is the reciprocal of the parallax in arcsec.
	return auPerParsec / parallaxArcsec
}

// ParseStars reads a star dataset: CSV records
//
//	hip,ra_deg,dec_deg,magnitude,parallax_mas
//
// with '#' comment lines ignored. Records without a usable position are
// dropped, the way the raw Hipparcos dump drops them.
func ParseStars(r io.Reader) (map[int]Star, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	out := make(map[int]Star)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read stars: %w", err)
		}
		if len(rec) != 5 {
			return nil, fmt.Errorf("star record has %d columns, want 5", len(rec))
		}
		if strings.TrimSpace(rec[1]) == "" {
			continue // no reliable position
		}

		hip, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("star record HIP %q: %w", rec[0], err)
		}
		nums := make([]float64, 4)
		for i := range nums {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("star HIP %d column %d: %w", hip, i+2, err)
			}
			nums[i] = v
		}

		out[hip] = Star{
			HIP:         hip,
			RADeg:       nums[0],
			DecDeg:      nums[1],
			Magnitude:   nums[2],
			ParallaxMas: nums[3],
		}
	}
	return out, nil
}

// BrightStars is a built-in subset of the Hipparcos catalog covering the
// naked-eye landmarks, so the tool works with no data files at all.
// Values from the Hipparcos main catalog (ICRS, epoch J1991.25).
var BrightStars = map[int]Star{
	32349:  {HIP: 32349, RADeg: 101.2872, DecDeg: -16.7161, Magnitude: -1.44, ParallaxMas: 379.21}, // Sirius
	30438:  {HIP: 30438, RADeg: 95.9880, DecDeg: -52.6957, Magnitude: -0.62, ParallaxMas: 10.43},   // Canopus
	69673:  {HIP: 69673, RADeg: 213.9153, DecDeg: 19.1824, Magnitude: -0.05, ParallaxMas: 88.85},   // Arcturus
	91262:  {HIP: 91262, RADeg: 279.2347, DecDeg: 38.7837, Magnitude: 0.03, ParallaxMas: 128.93},   // Vega
	24608:  {HIP: 24608, RADeg: 79.1723, DecDeg: 45.9980, Magnitude: 0.08, ParallaxMas: 77.29},     // Capella
	24436:  {HIP: 24436, RADeg: 78.6345, DecDeg: -8.2016, Magnitude: 0.18, ParallaxMas: 4.22},      // Rigel
	37279:  {HIP: 37279, RADeg: 114.8255, DecDeg: 5.2250, Magnitude: 0.40, ParallaxMas: 285.93},    // Procyon
	27989:  {HIP: 27989, RADeg: 88.7929, DecDeg: 7.4071, Magnitude: 0.45, ParallaxMas: 7.63},       // Betelgeuse
	7588:   {HIP: 7588, RADeg: 24.4285, DecDeg: -57.2367, Magnitude: 0.45, ParallaxMas: 22.68},     // Achernar
	97649:  {HIP: 97649, RADeg: 297.6945, DecDeg: 8.8683, Magnitude: 0.76, ParallaxMas: 194.44},    // Altair
	21421:  {HIP: 21421, RADeg: 68.9802, DecDeg: 16.5093, Magnitude: 0.87, ParallaxMas: 50.09},     // Aldebaran
	80763:  {HIP: 80763, RADeg: 247.3519, DecDeg: -26.4320, Magnitude: 1.06, ParallaxMas: 5.40},    // Antares
	65474:  {HIP: 65474, RADeg: 201.2983, DecDeg: -11.1614, Magnitude: 0.98, ParallaxMas: 12.44},   // Spica
	37826:  {HIP: 37826, RADeg: 116.3289, DecDeg: 28.0262, Magnitude: 1.16, ParallaxMas: 96.74},    // Pollux
	113368: {HIP: 113368, RADeg: 344.4127, DecDeg: -29.6222, Magnitude: 1.17, ParallaxMas: 130.08}, // Fomalhaut
	102098: {HIP: 102098, RADeg: 310.3580, DecDeg: 45.2803, Magnitude: 1.25, ParallaxMas: 1.01},    // Deneb
	49669:  {HIP: 49669, RADeg: 152.0930, DecDeg: 11.9672, Magnitude: 1.36, ParallaxMas: 42.09},    // Regulus
	11767:  {HIP: 11767, RADeg: 37.9546, DecDeg: 89.2641, Magnitude: 1.97, ParallaxMas: 7.56},      // Polaris
	87937:  {HIP: 87937, RADeg: 269.4521, DecDeg: 4.6934, Magnitude: 9.54, ParallaxMas: 549.01},    // Barnard's Star
}
