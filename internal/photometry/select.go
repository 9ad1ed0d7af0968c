package photometry

// Parameters exposes named numeric fields from a catalog row. Absence of
// a field must be distinguishable from a stored NaN with the same name,
// which is why presence is queried separately from the value.
type Parameters interface {
	Has(field string) bool
	Value(field string) float64
}

// Catalog field names consulted by Select. The lower-case g/k pair really
// is a different convention from H/G; blame the Minor Planet Center.
const (
	FieldMagnitudeH = "magnitude_H"
	FieldMagnitudeG = "magnitude_G"
	FieldMagnitudeg = "magnitude_g"
	FieldMagnitudek = "magnitude_k"
	FieldMagnitude  = "magnitude"
)

// standardBodies maps NAIF identifiers of the major solar system bodies
// to hand-built magnitude models. The inner planets appear under both
// their barycenter and planet-center codes. Initialized once, never
// mutated.
var standardBodies = map[int]IlluminatedBody{
	1:   Mercury,
	199: Mercury,
	2:   Venus,
	299: Venus,
	3:   Earth,
	399: Earth,
	4:   Mars,
	499: Mars,
	5:   Jupiter,
	6:   Saturn,
	7:   Uranus,
	8:   Neptune,

	// Pluto doesn't have a detailed reflectance model, so we use the
	// generic H/G law with recent photometry.
	9: HGReflectingBody{H: -0.45, G: 0.15},

	// The Sun is a mass of incandescent gas, an amazing nuclear furnace
	// with an absolute magnitude of +4.83.
	10: ProximateLuminousBody{M: 4.83},
}

// Select picks the magnitude model for a body, or nil if none applies.
// The rules form a priority cascade, first match wins:
//
//  1. a known major body by NAIF identifier,
//  2. the (H, G) minor-planet system,
//  3. the (g, k) comet brightness law,
//  4. a plain constant apparent magnitude,
//  5. nothing.
func Select(naifID int, row Parameters) IlluminatedBody {
	if model, ok := standardBodies[naifID]; ok {
		return model
	}

	if row == nil {
		return nil
	}

	if row.Has(FieldMagnitudeH) && row.Has(FieldMagnitudeG) {
		return HGReflectingBody{H: row.Value(FieldMagnitudeH), G: row.Value(FieldMagnitudeG)}
	}

	if row.Has(FieldMagnitudeg) && row.Has(FieldMagnitudek) {
		return SolarActivatedBody{G: row.Value(FieldMagnitudeg), K: row.Value(FieldMagnitudek)}
	}

	if row.Has(FieldMagnitude) {
		return DistantLuminousBody{M: row.Value(FieldMagnitude)}
	}

	return nil
}
