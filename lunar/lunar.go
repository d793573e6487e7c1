// Public domain.

// Package lunar computes the geocentric position and distance of the
// Moon by summing the full periodic series in the four fundamental
// lunar arguments, with additive perturbations from Venus, Jupiter and
// the flattening of the Earth.  Accuracy is about 10″ in longitude and
// 4″ in latitude.
package lunar

import (
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/pjain03/moon-phases/ecliptic"
	"github.com/pjain03/moon-phases/solar"
)

// MeanLongitude returns the Moon's mean longitude L′, including the
// constant term of the effect of light-time.
func MeanLongitude(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		218.3164591, 481267.88134236, -.0013268,
		1/538841., -1/65194000.)).Mod1()
}

// MeanElongation returns the Moon's mean elongation from the Sun, D.
func MeanElongation(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		297.8502042, 445267.1115168, -.0016300,
		1/545868., -1/113065000.)).Mod1()
}

// MeanAnomaly returns the Moon's mean anomaly M′.
func MeanAnomaly(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		134.9634114, 477198.8676313, .0089970,
		1/69699., -1/14712000.)).Mod1()
}

// ArgumentOfLatitude returns F, the Moon's mean distance from its
// ascending node.
func ArgumentOfLatitude(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		93.2720993, 483202.0175273, -.0034029,
		-1/3526000., 1/863310000.)).Mod1()
}

// eFactor returns the multiplier E compensating for the secular
// decrease of the eccentricity of the Earth's orbit.  Series terms with
// a solar anomaly multiple of ±1 take E, of ±2 take E².
func eFactor(T float64) float64 {
	return base.Horner(T, 1, -.002516, -.0000074)
}

// Position returns the Moon's geocentric ecliptic longitude λ and
// latitude β referred to the mean equinox of the date, and the
// Earth-Moon distance Δ in kilometers, for dynamical time T in Julian
// centuries from J2000.0.
func Position(T float64) (λ, β unit.Angle, Δ float64) {
	Lʹ := MeanLongitude(T)
	D := MeanElongation(T)
	M := solar.MeanAnomaly(T)
	Mʹ := MeanAnomaly(T)
	F := ArgumentOfLatitude(T)
	E := eFactor(T)
	E2 := E * E

	var Σl, Σr, Σb float64
	for _, r := range lrTable {
		a := D.Mul(float64(r.d)) + M.Mul(float64(r.m)) +
			Mʹ.Mul(float64(r.mp)) + F.Mul(float64(r.f))
		s, c := a.Sincos()
		e := 1.
		switch r.m {
		case 1, -1:
			e = E
		case 2, -2:
			e = E2
		}
		Σl += r.sl * e * s
		Σr += r.sr * e * c
	}
	for _, r := range bTable {
		a := D.Mul(float64(r.d)) + M.Mul(float64(r.m)) +
			Mʹ.Mul(float64(r.mp)) + F.Mul(float64(r.f))
		e := 1.
		switch r.m {
		case 1, -1:
			e = E
		case 2, -2:
			e = E2
		}
		Σb += r.sb * e * a.Sin()
	}

	// Additive perturbations: A1 the action of Venus, A2 of Jupiter,
	// the L′ and A3 terms the flattening of the Earth.
	A1 := unit.AngleFromDeg(119.75 + 131.849*T).Mod1()
	A2 := unit.AngleFromDeg(53.09 + 479264.290*T).Mod1()
	A3 := unit.AngleFromDeg(313.45 + 481266.484*T).Mod1()
	Σl += 3958*A1.Sin() + 1962*(Lʹ-F).Sin() + 318*A2.Sin()
	Σb += -2235*Lʹ.Sin() + 382*A3.Sin() +
		175*(A1-F).Sin() + 175*(A1+F).Sin() +
		127*(Lʹ-Mʹ).Sin() - 115*(Lʹ+Mʹ).Sin()

	λ = (Lʹ + unit.AngleFromDeg(Σl*1e-6)).Mod1()
	β = unit.AngleFromDeg(Σb * 1e-6)
	Δ = 385000.56 + Σr*1e-3
	return
}

// Equatorial returns the Moon's geocentric right ascension and
// declination, rotated through the mean obliquity of the date, and the
// Earth-Moon distance in kilometers.
func Equatorial(T float64) (α unit.RA, δ unit.Angle, Δ float64) {
	var λ, β unit.Angle
	λ, β, Δ = Position(T)
	α, δ = ecliptic.ToEquatorial(λ, β, ecliptic.MeanObliquity(T))
	return
}
