// Public domain.

// Package solar computes a low-accuracy geocentric position of the Sun.
//
// The chain is mean longitude and anomaly, equation of center, true and
// apparent longitude, then the rotation to equatorial coordinates.
// Accuracy is about 0.01 degree, plenty for phase work.
package solar

import (
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/pjain03/moon-phases/ecliptic"
)

// AU is the astronomical unit in kilometers.
const AU = 149597870.7

// MeanLongitude returns the geometric mean longitude L0 of the Sun
// referred to the mean equinox of the date.
func MeanLongitude(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		280.46645, 36000.76983, .0003032)).Mod1()
}

// MeanAnomaly returns the mean anomaly M of the Sun.
func MeanAnomaly(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T,
		357.52910, 35999.05030, -.0001559, -.00000048)).Mod1()
}

// Eccentricity returns the eccentricity of the Earth's orbit.
func Eccentricity(T float64) float64 {
	return base.Horner(T, .016708617, -.000042037, -.0000001236)
}

// Center returns the Sun's equation of center C.
func Center(T float64, M unit.Angle) unit.Angle {
	return unit.AngleFromDeg(
		(1.914600-.004817*T-.000014*T*T)*M.Sin() +
			(.019993-.000101*T)*M.Mul(2).Sin() +
			.000290*M.Mul(3).Sin())
}

// Radius returns the Sun-Earth distance in AU from the eccentricity e
// and true anomaly ν.
func Radius(e float64, ν unit.Angle) float64 {
	return 1.000001018 * (1 - e*e) / (1 + e*ν.Cos())
}

// ApparentLongitude corrects the true longitude for nutation and
// aberration.
func ApparentLongitude(T float64, trueLong unit.Angle) unit.Angle {
	Ω := ecliptic.Node(T)
	return trueLong - unit.AngleFromDeg(.00569+.00478*Ω.Sin())
}

// Position returns the Sun's apparent geocentric right ascension and
// declination, its apparent ecliptic longitude, and the Earth-Sun
// distance in AU, for dynamical time T in Julian centuries from J2000.0.
func Position(T float64) (α unit.RA, δ, λ unit.Angle, R float64) {
	L0 := MeanLongitude(T)
	M := MeanAnomaly(T)
	C := Center(T, M)
	trueLong := L0 + C
	ν := M + C
	R = Radius(Eccentricity(T), ν)
	λ = ApparentLongitude(T, trueLong).Mod1()
	// For the apparent position the rotation uses the mean obliquity
	// nudged by .00256 cos Ω, standing in for the nutation in obliquity.
	Ω := ecliptic.Node(T)
	ε := ecliptic.MeanObliquity(T) + unit.AngleFromDeg(.00256*Ω.Cos())
	α, δ = ecliptic.ToEquatorial(λ, 0, ε)
	return
}
