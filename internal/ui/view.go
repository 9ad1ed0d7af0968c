package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyward/almanac/internal/astro"
	"github.com/skyward/almanac/internal/body"
	"github.com/skyward/almanac/internal/version"
)

// Palette for the dashboard.
const (
	colorTitle    = "135" // Purple
	colorHeader   = "60"  // Slate
	colorSelected = "229" // Pale yellow
	colorBright   = "229" // Bright bodies
	colorFaint    = "244" // Faint or modelless bodies
	colorError    = "196" // Red
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorTitle)).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorHeader))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSelected)).Bold(true)
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorFaint))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	detailStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	header := titleStyle.Render("ALMANAC " + version.Version)
	if !m.snapshot.At.IsZero() {
		header += headerStyle.Render("  " + m.snapshot.At.Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString(header + "\n\n")

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.lastErr)) + "\n\n")
	}

	b.WriteString(m.renderTable())

	if m.showDetail {
		if obs, ok := m.selected(); ok {
			b.WriteString("\n" + detailStyle.Render(renderDetail(obs)) + "\n")
		}
	}

	b.WriteString("\n" + headerStyle.Render("↑/↓ select · enter detail · q quit"))
	return b.String()
}

func (m Model) selected() (body.Observation, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Observations) {
		return body.Observation{}, false
	}
	return m.snapshot.Observations[m.cursor], true
}

func (m Model) renderTable() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-14s %7s %8s %8s %-14s %10s", "BODY", "MAG", "ALT", "AZ", "ECLIPTIC", "DIST")))
	b.WriteString("\n")

	for i, obs := range m.snapshot.Observations {
		mag := "     -"
		if obs.MagnitudeValid {
			mag = fmt.Sprintf("%+6.2f", obs.Magnitude)
		}

		alt, az := "       -", "       -"
		if hz, ok := obs.Horizontal(); ok {
			alt = fmt.Sprintf("%+7.1f°", hz.ElDeg)
			az = fmt.Sprintf("%7.1f°", hz.AzDeg)
		}

		line := fmt.Sprintf("%-14s %7s %8s %8s %-14s %10s",
			obs.Target.LongName(),
			mag,
			alt,
			az,
			obs.Ecliptic().ClassicalLongitudeString(true),
			astro.FormatDistance(obs.DistanceKm()),
		)

		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("▸ " + line))
		case !obs.MagnitudeValid:
			b.WriteString(faintStyle.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if len(m.snapshot.Observations) == 0 {
		b.WriteString(faintStyle.Render("  waiting for first observation round..."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderDetail(obs body.Observation) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(obs.Target.LongName()) + "  " + faintStyle.Render(obs.Target.Type.String()) + "\n")

	ra, dec := obs.Equatorial()
	b.WriteString(fmt.Sprintf("RA %s   Dec %s\n", astro.FormatAngleDMS(ra), astro.FormatAngleDMS(dec)))

	ecl := obs.Ecliptic()
	b.WriteString(fmt.Sprintf("Ecliptic %s   Lat %s\n", ecl.ClassicalLongitudeString(false), astro.FormatAngleDM(ecl.LatDeg)))

	if alpha, ok := obs.PhaseAngle(); ok {
		b.WriteString(fmt.Sprintf("Phase angle %0.2f°\n", alpha))
	}

	b.WriteString(fmt.Sprintf("Subpoint %s", astro.FormatLatLon(obs.Subpoint)))
	if dist, ok := obs.SubpointDistanceKm(); ok {
		b.WriteString(fmt.Sprintf("   %s from observer", astro.FormatDistance(dist)))
	}

	return b.String()
}
