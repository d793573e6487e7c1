// Public domain.

/*
Package moonphase computes the illuminated fraction of the Moon's disk
and the position angle of its bright limb for an arbitrary calendar
date, from geocentric ephemeris approximations of the Sun and Moon.

The computation chains the subordinate packages julian, solar and lunar:
a civil date becomes a Julian Day and a time argument in Julian
centuries, the Sun and Moon positions follow from polynomial and
periodic-series approximations, and the two geometries combine into the
phase quantities.  Everything is a pure function of its numeric inputs;
the packages hold no state and may be called concurrently without
coordination.

Dates use astronomical year numbering (year 0 is 1 BCE) and a fractional
day of month for time of day, so

	r, err := moonphase.ForDate(1992, 4, 12)
	r, err = moonphase.ForDate(-1000, 7, 12.5)

both work.  Dates from 1582 October 15 on are Gregorian, earlier dates
Julian, matching historical usage.

The command lunarphase in cmd is a thin presentation layer over this
package.
*/
package moonphase
