// Public domain.

// Package mpprog implements the lunarphase command, the presentation
// layer over the moonphase package.
package mpprog

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/naoina/toml"
	"github.com/soniakeys/exit"

	"github.com/pjain03/moon-phases/julian"
)

const versionString = "lunarphase version 1.0 Go source."
const copyrightString = "Public domain."

type commandLine struct {
	y           int
	m           int
	d           float64
	fnJob       string
	interactive bool
}

// Main is the program.  The thin main in cmd/lunarphase calls it.
func Main() {
	defer exit.Handler()
	cl := parseCommandLine()
	switch {
	case cl.interactive:
		runUI(cl)
	case cl.fnJob != "":
		printTable(readJob(cl.fnJob))
	default:
		printReport(os.Stdout, cl.y, cl.m, cl.d)
	}
}

func parseCommandLine() *commandLine {
	var cl commandLine
	now := time.Now().UTC()
	y0, m0, d0 := now.Date()
	frac := (float64(now.Hour()) + float64(now.Minute())/60) / 24
	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  lunarphase                       Phase report for the current moment.
  lunarphase -y 1992 -m 4 -d 12.5  Report for a date; the fraction of
                                   -d is the time of day.
  lunarphase -j phase.job          Table of dates from a TOML job file.
  lunarphase -i                    Interactive date browser.
  lunarphase -v                    Version and copyright.

Years use astronomical numbering: 0 is 1 BCE, negative years earlier.
`)
	}
	flag.IntVar(&cl.y, "y", y0, "year")
	flag.IntVar(&cl.m, "m", int(m0), "month")
	flag.Float64Var(&cl.d, "d", float64(d0)+frac, "day, fraction is time of day")
	flag.StringVar(&cl.fnJob, "j", "", "job file")
	flag.BoolVar(&cl.interactive, "i", false, "interactive date browser")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}
	return &cl
}

// job is the TOML job file: a start date, and optionally a row count
// and step to tabulate a whole run of dates.
type job struct {
	Year  int
	Month int
	Day   float64
	Days  int     // number of table rows, default 1
	Step  float64 // days between rows, default 1
}

func readJob(fn string) *job {
	td, err := os.ReadFile(fn)
	if err != nil {
		exit.Log(err)
	}
	j := job{Days: 1, Step: 1}
	if err = toml.Unmarshal(td, &j); err != nil {
		exit.Log(err)
	}
	if j.Month == 0 {
		exit.Log(fmt.Errorf("%s: no Month", fn))
	}
	if j.Days < 1 || j.Step <= 0 {
		exit.Log(fmt.Errorf("%s: Days and Step must be positive", fn))
	}
	return &j
}

// startJD validates the job's start date by converting it.
func (j *job) startJD() float64 {
	jd, err := julian.CalendarToJD(j.Year, j.Month, j.Day)
	if err != nil {
		exit.Log(err)
	}
	return jd
}
