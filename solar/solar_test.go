// Public domain.

package solar_test

import (
	"math"
	"testing"

	msolar "github.com/soniakeys/meeus/v3/solar"

	"github.com/pjain03/moon-phases/julian"
	"github.com/pjain03/moon-phases/solar"
)

// Meeus example 25.a: 1992 October 13, 0h TD.
const t1992 = (2448908.5 - 2451545) / 36525

func TestChain1992(t *testing.T) {
	L0 := solar.MeanLongitude(t1992)
	if math.Abs(L0.Deg()-201.80720) > 1e-4 {
		t.Errorf("L0 = %.5f, want 201.80720", L0.Deg())
	}
	M := solar.MeanAnomaly(t1992)
	if math.Abs(M.Deg()-278.99397) > 1e-4 {
		t.Errorf("M = %.5f, want 278.99397", M.Deg())
	}
	if e := solar.Eccentricity(t1992); math.Abs(e-.016711651) > 1e-7 {
		t.Errorf("e = %.9f, want .016711651", e)
	}
	C := solar.Center(t1992, M)
	if math.Abs(C.Deg()+1.89732) > 1e-4 {
		t.Errorf("C = %.5f, want -1.89732", C.Deg())
	}
	if s := (L0 + C).Deg(); math.Abs(s-199.90988) > 2e-4 {
		t.Errorf("true longitude = %.5f, want 199.90988", s)
	}
	ν := M + C
	if R := solar.Radius(solar.Eccentricity(t1992), ν); math.Abs(R-.99766) > 1e-5 {
		t.Errorf("R = %.5f, want .99766", R)
	}
}

func TestPosition1992(t *testing.T) {
	α, δ, λ, R := solar.Position(t1992)
	if math.Abs(λ.Deg()-199.90895) > 5e-4 {
		t.Errorf("λ = %.5f, want 199.90895", λ.Deg())
	}
	// α 13h13m31.4s, δ -7°47′06″ apparent.
	if math.Abs(α.Deg()-198.38083) > 2e-3 {
		t.Errorf("α = %.5f, want 198.38083", α.Deg())
	}
	if math.Abs(δ.Deg()+7.78507) > 2e-3 {
		t.Errorf("δ = %.5f, want -7.78507", δ.Deg())
	}
	if math.Abs(R-.99766) > 1e-5 {
		t.Errorf("R = %.5f, want .99766", R)
	}
}

// TestMeeusAgreement compares the whole chain with the meeus library's
// own low-accuracy solar position over a spread of dates.
func TestMeeusAgreement(t *testing.T) {
	for _, c := range []struct {
		y, m int
		d    float64
	}{
		{1900, 1, 1},
		{1957, 10, 4.81},
		{1992, 4, 12},
		{1992, 10, 13},
		{2026, 8, 28.25},
	} {
		jd, err := julian.CalendarToJD(c.y, c.m, c.d)
		if err != nil {
			t.Fatal(err)
		}
		T := julian.Century(jd)
		α, δ, _, R := solar.Position(T)
		wantα, wantδ := msolar.ApparentEquatorial(jd)
		if d := math.Abs(α.Deg() - wantα.Deg()); math.Min(d, 360-d) > .01 {
			t.Errorf("%v: α = %.5f, meeus %.5f", c, α.Deg(), wantα.Deg())
		}
		if math.Abs(δ.Deg()-wantδ.Deg()) > .01 {
			t.Errorf("%v: δ = %.5f, meeus %.5f", c, δ.Deg(), wantδ.Deg())
		}
		if wantR := msolar.Radius(T); math.Abs(R-wantR) > 1e-5 {
			t.Errorf("%v: R = %.7f, meeus %.7f", c, R, wantR)
		}
	}
}

// TestPurity: identical input must give bit-identical output.
func TestPurity(t *testing.T) {
	α1, δ1, λ1, R1 := solar.Position(t1992)
	α2, δ2, λ2, R2 := solar.Position(t1992)
	if α1 != α2 || δ1 != δ2 || λ1 != λ2 || R1 != R2 {
		t.Error("Position is not deterministic")
	}
}
