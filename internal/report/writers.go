package report

import (
	"fmt"
	"io"
	"time"

	"github.com/skyward/almanac/internal/astro"
	"github.com/skyward/almanac/internal/body"
)

// WriteObservation writes the full card for one observation: equatorial,
// horizontal, and ecliptic coordinates, the Earth subpoint, and the
// magnitude when one is available.
func WriteObservation(w io.Writer, obs body.Observation) {
	magStr := ""
	if obs.MagnitudeValid {
		magStr = fmt.Sprintf(" (%+0.2f)", obs.Magnitude)
	}
	fmt.Fprintf(w, "%s%s\n", obs.Target.LongName(), magStr)

	t := NewTextTable(2)

	ra, dec := obs.Equatorial()
	t.Append("Equatorial:", fmt.Sprintf("RA %s", astro.FormatAngleDMS(ra)), fmt.Sprintf("Dec %s", astro.FormatAngleDMS(dec)))

	if hz, ok := obs.Horizontal(); ok {
		t.Append("Horizontal:",
			fmt.Sprintf("Alt %s", astro.FormatAngleDM(hz.ElDeg)),
			fmt.Sprintf("Az %s", astro.FormatAngleDM(hz.AzDeg)),
			fmt.Sprintf("Dist %s", astro.FormatDistance(obs.DistanceKm())),
		)
	}

	ecl := obs.Ecliptic()
	eclRow := []string{"Ecliptic:", ecl.ClassicalLongitudeString(false), fmt.Sprintf("Lat %s", astro.FormatAngleDM(ecl.LatDeg))}
	if alpha, ok := obs.PhaseAngle(); ok {
		eclRow = append(eclRow, fmt.Sprintf("Phase %0.1f°", alpha))
	}
	t.Append(eclRow...)

	subRow := []string{"Subpoint:", astro.FormatLatLon(obs.Subpoint)}
	if dist, ok := obs.SubpointDistanceKm(); ok {
		subRow = append(subRow, fmt.Sprintf("%s from observer", astro.FormatDistance(dist)))
	}
	t.Append(subRow...)

	fmt.Fprint(w, t.Format("  "))
}

// WriteSummaryTable writes one line per observation: name, magnitude,
// altitude/azimuth, and zodiacal position.
func WriteSummaryTable(w io.Writer, observations []body.Observation, at time.Time) {
	fmt.Fprintf(w, "Almanac for %s\n\n", at.Format(time.RFC1123))

	t := NewTextTable(2)
	t.Append("BODY", "MAG", "ALT", "AZ", "ECLIPTIC", "DIST")

	for _, obs := range observations {
		mag := "-"
		if obs.MagnitudeValid {
			mag = fmt.Sprintf("%+0.2f", obs.Magnitude)
		}

		alt, az := "-", "-"
		if hz, ok := obs.Horizontal(); ok {
			alt = fmt.Sprintf("%+0.1f°", hz.ElDeg)
			az = fmt.Sprintf("%0.1f°", hz.AzDeg)
		}

		t.Append(
			obs.Target.LongName(),
			mag,
			alt,
			az,
			obs.Ecliptic().ClassicalLongitudeString(false),
			astro.FormatDistance(obs.DistanceKm()),
		)
	}

	fmt.Fprint(w, t.Format(""))
}
