// Public domain.

// Package ecliptic holds the obliquity and nutation quantities shared by
// the solar and lunar positions, and the rotation from ecliptic to
// equatorial coordinates.
package ecliptic

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// MeanObliquity returns mean obliquity of the ecliptic ε₀ for dynamical
// time T in Julian centuries from J2000.0.
//
// Laskar's polynomial in units of 10000 Julian years, good to a small
// fraction of an arc second over ±10000 years from J2000.
func MeanObliquity(T float64) unit.Angle {
	u := T / 100
	return unit.AngleFromDeg(base.Horner(u,
		23.43929, -1.300258, -1.55, 1999.25, -51.38,
		-249.67, -39.05, 7.12, 27.87, 5.79, 2.45))
}

// Node returns the longitude of the ascending node of the Moon's mean
// orbit, Ω, the slow angle driving nutation and solar aberration.
func Node(T float64) unit.Angle {
	return unit.AngleFromDeg(125.04 - 1934.136*T).Mod1()
}

// nutationArgs returns Ω and the doubled mean longitudes of Sun and Moon
// used by the low-accuracy nutation terms.
func nutationArgs(T float64) (Ω, twoL, twoLʹ unit.Angle) {
	Ω = Node(T)
	twoL = unit.AngleFromDeg(280.4665 + 36000.7698*T).Mul(2)
	twoLʹ = unit.AngleFromDeg(218.3165 + 481267.8813*T).Mul(2)
	return
}

// NutationInLongitude returns Δψ for dynamical time T, accurate to
// about half an arc second.
func NutationInLongitude(T float64) unit.Angle {
	Ω, twoL, twoLʹ := nutationArgs(T)
	return unit.AngleFromSec(-17.20*Ω.Sin() -
		1.32*twoL.Sin() - .23*twoLʹ.Sin() + .21*Ω.Mul(2).Sin())
}

// NutationInObliquity returns Δε for dynamical time T, accurate to
// about a tenth of an arc second.
func NutationInObliquity(T float64) unit.Angle {
	Ω, twoL, twoLʹ := nutationArgs(T)
	return unit.AngleFromSec(9.20*Ω.Cos() +
		.57*twoL.Cos() + .10*twoLʹ.Cos() - .09*Ω.Mul(2).Cos())
}

// ToEquatorial rotates ecliptic longitude λ and latitude β to right
// ascension and declination through the obliquity ε.
func ToEquatorial(λ, β, ε unit.Angle) (α unit.RA, δ unit.Angle) {
	sλ, cλ := λ.Sincos()
	sβ, cβ := β.Sincos()
	sε, cε := ε.Sincos()
	α = unit.RAFromRad(math.Atan2(sλ*cε-β.Tan()*sε, cλ))
	δ = unit.Angle(math.Asin(sβ*cε + cβ*sε*sλ))
	return
}
