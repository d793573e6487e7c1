// Public domain.

package mpprog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/exit"

	moonphase "github.com/pjain03/moon-phases"
	"github.com/pjain03/moon-phases/julian"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// uiModel is the interactive browser: the current date held as a
// Julian Day, stepped by key presses.  The view recomputes the phase
// from scratch each draw; the chain is pure and cheap.
type uiModel struct {
	jd float64
}

func runUI(cl *commandLine) {
	jd, err := julian.CalendarToJD(cl.y, cl.m, cl.d)
	if err != nil {
		exit.Log(err)
	}
	if _, err := tea.NewProgram(uiModel{jd: jd}).Run(); err != nil {
		exit.Log(err)
	}
}

func (m uiModel) Init() tea.Cmd { return nil }

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.jd--
		case "right", "l":
			m.jd++
		case "down", "j":
			m.jd -= 7
		case "up", "k":
			m.jd += 7
		case "shift+left", "H":
			m.jd -= 1. / 24
		case "shift+right", "L":
			m.jd += 1. / 24
		}
	}
	return m, nil
}

func (m uiModel) View() string {
	y, mo, d := julian.CalendarFromJD(m.jd)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lunar phase  "+dateString(y, mo, d)+" UT") + "\n")
	r, err := moonphase.ForDate(y, mo, d)
	if err != nil {
		// stepping can run the date out of range; report and keep going
		b.WriteString(err.Error() + "\n")
	} else {
		fmt.Fprintf(&b, "%s %5.1f%%   %s %5.1f°   %s\n",
			labelStyle.Render("illuminated"), r.Illuminated*100,
			labelStyle.Render("limb"), r.LimbAngle.Deg(),
			phaseName(r))
		b.WriteString("\n")
		for _, line := range disk(r.Illuminated, r.Waxing, 8) {
			b.WriteString(renderDiskLine(line) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render(
		"←/→ day   ↑/↓ week   shift+←/→ hour   q quit") + "\n")
	return b.String()
}
