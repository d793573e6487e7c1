// Public domain.

// Command lunarphase prints the Moon's illuminated fraction and the
// position angle of its bright limb for a calendar date, as a report,
// a table, or an interactive browser.
package main

import "github.com/pjain03/moon-phases/internal/mpprog"

func main() {
	mpprog.Main()
}
