// Public domain.

package moonphase

import (
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/pjain03/moon-phases/julian"
	"github.com/pjain03/moon-phases/lunar"
	"github.com/pjain03/moon-phases/solar"
)

// NumericError indicates degenerate geometry, a non-finite coordinate
// or a non-positive distance, for which the phase quantities are
// undefined.
type NumericError struct {
	Quantity string
	Value    float64
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("moonphase: %s %v makes phase undefined",
		e.Quantity, e.Value)
}

// Result holds the phase quantities for one instant.
type Result struct {
	// Illuminated is the fraction of the Moon's disk that is lit,
	// 0 at new moon, 1 at full moon.
	Illuminated float64

	// LimbAngle is the position angle of the midpoint of the bright
	// limb, measured eastward from celestial north, [0,360).
	LimbAngle unit.Angle

	// Elongation is the geocentric Moon-Sun angular separation ψ.
	Elongation unit.Angle

	// PhaseAngle is the Sun-Moon-Earth angle i determining the
	// illuminated fraction.
	PhaseAngle unit.Angle

	// Waxing is true while illumination is increasing, between new
	// moon and full moon.
	Waxing bool
}

// cart returns the unit vector of an equatorial direction.
func cart(α unit.RA, δ unit.Angle) coord.Cart {
	sα, cα := unit.Angle(α).Sincos()
	sδ, cδ := δ.Sincos()
	return coord.Cart{X: cδ * cα, Y: cδ * sα, Z: sδ}
}

// Compute derives the phase quantities from geocentric equatorial
// positions and distances of the Sun and Moon.  Distances R (Sun) and
// Δ (Moon) must share a unit; the chain in ForDate passes kilometers.
func Compute(αs unit.RA, δs unit.Angle, R float64,
	αm unit.RA, δm unit.Angle, Δ float64) (Result, error) {
	for _, q := range []struct {
		name string
		v    float64
	}{
		{"sun right ascension", αs.Rad()},
		{"sun declination", δs.Rad()},
		{"moon right ascension", αm.Rad()},
		{"moon declination", δm.Rad()},
	} {
		if math.IsNaN(q.v) || math.IsInf(q.v, 0) {
			return Result{}, &NumericError{q.name, q.v}
		}
	}
	if !(R > 0) || math.IsInf(R, 0) {
		return Result{}, &NumericError{"sun distance", R}
	}
	if !(Δ > 0) || math.IsInf(Δ, 0) {
		return Result{}, &NumericError{"moon distance", Δ}
	}

	// Geocentric elongation ψ from the dot product of the unit
	// vectors, the cosine rule on δ and Δα in vector form.
	sv := cart(αs, δs)
	mv := cart(αm, δm)
	cψ := sv.Dot(&mv)
	if cψ > 1 {
		cψ = 1
	} else if cψ < -1 {
		cψ = -1
	}
	ψ := math.Acos(cψ)
	sψ := math.Sin(ψ)

	// Phase angle i, quadrant settled by the signs of the atan2
	// arguments so i falls in [0,180].
	i := math.Atan2(R*sψ, Δ-R*cψ)

	// Illuminated fraction, clamped only against floating point
	// overshoot at exact syzygy.
	k := (1 + math.Cos(i)) / 2
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}

	// Position angle of the midpoint of the bright limb.
	Δα := unit.Angle(αs) - unit.Angle(αm)
	sΔα, cΔα := Δα.Sincos()
	sδs, cδs := δs.Sincos()
	sδm, cδm := δm.Sincos()
	χ := unit.Angle(math.Atan2(cδs*sΔα, sδs*cδm-cδs*sδm*cΔα)).Mod1()

	// The Moon east of the Sun in right ascension is waxing.
	sep := (unit.Angle(αm) - unit.Angle(αs)).Mod1()
	return Result{
		Illuminated: k,
		LimbAngle:   χ,
		Elongation:  unit.Angle(ψ),
		PhaseAngle:  unit.Angle(i),
		Waxing:      sep.Deg() < 180,
	}, nil
}

// ForDate computes the phase quantities for a calendar date, chaining
// the calendar conversion and the solar and lunar positions.  The
// fractional part of d expresses time of day; negative years denote
// dates before the common era.
func ForDate(y, m int, d float64) (Result, error) {
	jd, err := julian.CalendarToJD(y, m, d)
	if err != nil {
		return Result{}, err
	}
	T := julian.Century(jd)
	αs, δs, _, R := solar.Position(T)
	αm, δm, Δ := lunar.Equatorial(T)
	return Compute(αs, δs, R*solar.AU, αm, δm, Δ)
}
