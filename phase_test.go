// Public domain.

package moonphase_test

import (
	"math"
	"testing"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	moonphase "github.com/pjain03/moon-phases"
	"github.com/pjain03/moon-phases/julian"
)

// TestExample48a reproduces Meeus example 48.a, 1992 April 12 0h TD:
// k = 0.6786, χ = 285.0°.
func TestExample48a(t *testing.T) {
	r, err := moonphase.ForDate(1992, 4, 12)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Illuminated-.6786) > 3e-3 {
		t.Errorf("k = %.4f, want .6786", r.Illuminated)
	}
	if math.Abs(r.LimbAngle.Deg()-285.0) > .5 {
		t.Errorf("χ = %.2f, want 285.0", r.LimbAngle.Deg())
	}
	if math.Abs(r.PhaseAngle.Deg()-69.08) > .2 {
		t.Errorf("i = %.3f, want ≈69.08", r.PhaseAngle.Deg())
	}
	if math.Abs(r.Elongation.Deg()-110.79) > .2 {
		t.Errorf("ψ = %.3f, want ≈110.79", r.Elongation.Deg())
	}
	if !r.Waxing {
		t.Error("1992 April 12 should be waxing")
	}
}

// TestSyzygies anchors new and full moon on two eclipses, where the
// alignment is exact by construction.
func TestSyzygies(t *testing.T) {
	// Total solar eclipse of 2017 August 21, greatest at 18:26 UT.
	r, err := moonphase.ForDate(2017, 8, 21.768)
	if err != nil {
		t.Fatal(err)
	}
	if r.Illuminated > 1e-3 {
		t.Errorf("new moon k = %g, want < 1e-3", r.Illuminated)
	}
	if r.PhaseAngle.Deg() < 179 {
		t.Errorf("new moon i = %.2f, want ≈180", r.PhaseAngle.Deg())
	}
	// Total lunar eclipse of 2015 September 28, greatest at 02:47 UT.
	r, err = moonphase.ForDate(2015, 9, 28.116)
	if err != nil {
		t.Fatal(err)
	}
	if 1-r.Illuminated > 1e-3 {
		t.Errorf("full moon k = %g, want ≈1", r.Illuminated)
	}
	if r.PhaseAngle.Deg() > 1.5 {
		t.Errorf("full moon i = %.2f, want ≈0", r.PhaseAngle.Deg())
	}
}

func TestWaning(t *testing.T) {
	// Full moon 1992 April 17; the 20th is waning gibbous.
	r, err := moonphase.ForDate(1992, 4, 20)
	if err != nil {
		t.Fatal(err)
	}
	if r.Waxing {
		t.Error("1992 April 20 should be waning")
	}
	if r.Illuminated < .5 {
		t.Errorf("k = %.4f, want gibbous", r.Illuminated)
	}
}

// TestRanges scans four years of dates checking the documented ranges
// and that the fraction agrees with the standard (1+cos i)/2 form.
func TestRanges(t *testing.T) {
	for jd := 2451545.0; jd < 2453006.0; jd += .7 {
		y, m, d := julian.CalendarFromJD(jd)
		r, err := moonphase.ForDate(y, m, d)
		if err != nil {
			t.Fatalf("jd %f: %v", jd, err)
		}
		if r.Illuminated < 0 || r.Illuminated > 1 {
			t.Fatalf("jd %f: k = %g out of [0,1]", jd, r.Illuminated)
		}
		if χ := r.LimbAngle.Deg(); χ < 0 || χ >= 360 {
			t.Fatalf("jd %f: χ = %g out of [0,360)", jd, χ)
		}
		if ψ := r.Elongation.Deg(); ψ < 0 || ψ > 180 {
			t.Fatalf("jd %f: ψ = %g out of [0,180]", jd, ψ)
		}
		if k := base.Illuminated(r.PhaseAngle); math.Abs(k-r.Illuminated) > 1e-12 {
			t.Fatalf("jd %f: k = %g, base.Illuminated = %g", jd, r.Illuminated, k)
		}
	}
}

func TestBCE(t *testing.T) {
	if _, err := moonphase.ForDate(-1000, 7, 12.5); err != nil {
		t.Fatal(err)
	}
	if _, err := moonphase.ForDate(0, 2, 29); err != nil {
		t.Fatal(err)
	}
}

func TestErrors(t *testing.T) {
	_, err := moonphase.ForDate(2019, 13, 1)
	if _, ok := err.(*julian.DomainError); !ok {
		t.Errorf("got %v (%T), want *julian.DomainError", err, err)
	}
	_, err = moonphase.Compute(0, 0, 1, 0, 0, 0)
	if _, ok := err.(*moonphase.NumericError); !ok {
		t.Errorf("got %v (%T), want *moonphase.NumericError", err, err)
	}
	_, err = moonphase.Compute(0, unit.Angle(math.NaN()), 1, 0, 0, 1)
	if _, ok := err.(*moonphase.NumericError); !ok {
		t.Errorf("got %v (%T), want *moonphase.NumericError", err, err)
	}
}

func TestPurity(t *testing.T) {
	r1, err := moonphase.ForDate(2019, 11, 17)
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := moonphase.ForDate(2019, 11, 17)
	if r1 != r2 {
		t.Error("ForDate is not deterministic")
	}
}
