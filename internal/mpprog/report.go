// Public domain.

package mpprog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"

	moonphase "github.com/pjain03/moon-phases"
	"github.com/pjain03/moon-phases/julian"
	"github.com/pjain03/moon-phases/lunar"
	"github.com/pjain03/moon-phases/solar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	litStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230"))

	darkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// phaseName classifies the phase for display only.  The eight names
// switch on the illuminated fraction and whether the Moon is waxing.
func phaseName(r moonphase.Result) string {
	const eps = .01
	switch {
	case r.Illuminated < eps:
		return "New Moon"
	case r.Illuminated > 1-eps:
		return "Full Moon"
	}
	wax := "Waning"
	if r.Waxing {
		wax = "Waxing"
	}
	switch {
	case r.Illuminated < .45:
		return wax + " Crescent"
	case r.Illuminated > .55:
		return wax + " Gibbous"
	case r.Waxing:
		return "First Quarter"
	}
	return "Last Quarter"
}

// dateString formats a possibly fractional, possibly BCE date.
func dateString(y, m int, d float64) string {
	return fmt.Sprintf("%d-%02d-%05.2f", y, m, d)
}

// printReport writes the full single-date report: phase numbers, the
// positions behind them, and the rendered disk.
func printReport(w io.Writer, y, m int, d float64) {
	jd, err := julian.CalendarToJD(y, m, d)
	if err != nil {
		exit.Log(err)
	}
	r, err := moonphase.ForDate(y, m, d)
	if err != nil {
		exit.Log(err)
	}
	T := julian.Century(jd)
	αs, δs, _, R := solar.Position(T)
	αm, δm, Δ := lunar.Equatorial(T)

	fmt.Fprintln(w, titleStyle.Render("Lunar phase  "+dateString(y, m, d)+" UT"))
	fmt.Fprintf(w, "%s %.4f\n", labelStyle.Render("Julian Day         "), jd)
	fmt.Fprintf(w, "%s %.1f%%  (%s)\n",
		labelStyle.Render("Illuminated        "), r.Illuminated*100, phaseName(r))
	fmt.Fprintf(w, "%s %.1f°\n",
		labelStyle.Render("Bright limb angle  "), r.LimbAngle.Deg())
	fmt.Fprintf(w, "%s %.1f°   %s %.1f°\n",
		labelStyle.Render("Elongation         "), r.Elongation.Deg(),
		labelStyle.Render("phase angle"), r.PhaseAngle.Deg())
	fmt.Fprintf(w, "%s %2v %2v  %.0f km\n",
		labelStyle.Render("Moon α δ Δ         "),
		sexa.FmtRA(αm), sexa.FmtAngle(δm), Δ)
	fmt.Fprintf(w, "%s %2v %2v  %.4f AU\n",
		labelStyle.Render("Sun  α δ R         "),
		sexa.FmtRA(αs), sexa.FmtAngle(δs), R)
	fmt.Fprintln(w)
	for _, line := range disk(r.Illuminated, r.Waxing, 9) {
		fmt.Fprintln(w, renderDiskLine(line))
	}
}

// printTable writes one line per job row, stepping the start date.
func printTable(j *job) {
	jd := j.startJD()
	fmt.Println("Date            JD          Illum   Limb     Moon RA      Moon Dec")
	for i := 0; i < j.Days; i++ {
		y, m, d := julian.CalendarFromJD(jd)
		r, err := moonphase.ForDate(y, m, d)
		if err != nil {
			exit.Log(err)
		}
		αm, δm, _ := lunar.Equatorial(julian.Century(jd))
		fmt.Printf("%-14s  %.3f  %5.1f%%  %5.1f°  %2v  %2v\n",
			dateString(y, m, d), jd, r.Illuminated*100, r.LimbAngle.Deg(),
			sexa.FmtRA(αm), sexa.FmtAngle(δm))
		jd += j.Step
	}
}

// renderDiskLine styles one line of disk output, lit cells bright and
// dark cells dim.
func renderDiskLine(line string) string {
	out := ""
	run, lit := "", false
	flush := func() {
		if run == "" {
			return
		}
		if lit {
			out += litStyle.Render(run)
		} else {
			out += darkStyle.Render(run)
		}
		run = ""
	}
	for _, c := range line {
		cellLit := c == litRune
		if cellLit != lit {
			flush()
			lit = cellLit
		}
		run += string(c)
	}
	flush()
	return out
}
