package clothoid

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

func TestFresnelZero(t *testing.T) {
	c, s, err := Fresnel(0)
	if err != nil {
		t.Fatalf("got error %v, expected none", err)
	}
	if c != 0 || s != 0 {
		t.Errorf("got (%v, %v), expected exactly (0, 0)", c, s)
	}
}

func TestFresnelKnownValues(t *testing.T) {
	// Reference values from Abramowitz & Stegun, table 7.7.
	values := []struct {
		x, c, s float64
	}{
		{0.5, 0.4923442, 0.0647324},
		{1.0, 0.7798934, 0.4382591},
		{1.5, 0.4452612, 0.6975050},
		{2.0, 0.4882534, 0.3434157},
		{2.5, 0.4574130, 0.6191818},
		{3.0, 0.6057508, 0.4963129},
		{4.0, 0.4984260, 0.4205158},
		{5.0, 0.5636312, 0.4991914},
	}
	for _, v := range values {
		c, s, err := Fresnel(v.x)
		if err != nil {
			t.Fatalf("Fresnel(%v): got error %v, expected none", v.x, err)
		}
		if math.Abs(c-v.c) > 1e-7 {
			t.Errorf("C(%v): got %v, expected %v", v.x, c, v.c)
		}
		if math.Abs(s-v.s) > 1e-7 {
			t.Errorf("S(%v): got %v, expected %v", v.x, s, v.s)
		}
	}
}

func TestFresnelOddSymmetry(t *testing.T) {
	for _, x := range []float64{1e-8, 0.1, 0.5, 1, 1.6, 2.5, 7, 100, 1e5} {
		cp, sp, err := Fresnel(x)
		if err != nil {
			t.Fatal(err)
		}
		cn, sn, err := Fresnel(-x)
		if err != nil {
			t.Fatal(err)
		}
		if cn != -cp || sn != -sp {
			t.Errorf("Fresnel(-%v): got (%v, %v), expected (%v, %v)", x, cn, sn, -cp, -sp)
		}
	}
}

// The integrals oscillate around 0.5 inside an envelope that decays like
// 1/(πx); the first oscillation peaks at C(1) ≈ 0.78 and S(√2) ≈ 0.71.
func TestFresnelBoundedness(t *testing.T) {
	for x := 0.0; x <= 50; x += 0.01 {
		c, s, err := Fresnel(x)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(c) > 0.8 || math.Abs(s) > 0.8 {
			t.Fatalf("Fresnel(%v): got (%v, %v), expected both within ±0.8", x, c, s)
		}
		if x >= 2 {
			bound := 1/(math.Pi*x) + 1e-6
			if math.Abs(c-0.5) > bound || math.Abs(s-0.5) > bound {
				t.Fatalf("Fresnel(%v): got (%v, %v), expected both within %v of 0.5", x, c, s, bound)
			}
		}
	}
}

func TestFresnelAsymptote(t *testing.T) {
	prev := math.Inf(1)
	for _, x := range []float64{10, 100, 1000, 1e5, 1e7} {
		c, s, err := Fresnel(x)
		if err != nil {
			t.Fatal(err)
		}
		dev := math.Max(math.Abs(c-0.5), math.Abs(s-0.5))
		if dev > 1/(math.Pi*x)+1e-9 {
			t.Errorf("Fresnel(%v): deviation %v from 0.5 exceeds envelope %v", x, dev, 1/(math.Pi*x))
		}
		if dev >= prev {
			t.Errorf("Fresnel(%v): deviation %v did not shrink below %v", x, dev, prev)
		}
		prev = dev
	}
}

// The rational-approximation branch hands over to the asymptotic branch at
// x² = 2.5625. Both branches must agree there to within the overall
// accuracy target.
func TestFresnelBranchBoundary(t *testing.T) {
	x := math.Sqrt(2.5625)
	lo := x * (1 - 1e-12)
	hi := x * (1 + 1e-12)
	cl, sl, err := Fresnel(lo)
	if err != nil {
		t.Fatal(err)
	}
	ch, sh, err := Fresnel(hi)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ch-cl) > 1e-12 || math.Abs(sh-sl) > 1e-12 {
		t.Errorf("got discontinuity (%v, %v) at x=%v, expected below 1e-12", ch-cl, sh-sl, x)
	}
}

// Check both branches against Gauss-Legendre quadrature of the defining
// integrals.
func TestFresnelQuadrature(t *testing.T) {
	for _, x := range []float64{0.3, 0.8, 1.3, 1.6, 2.2, 3.7, 6.1, 9.5} {
		c, s, err := Fresnel(x)
		if err != nil {
			t.Fatal(err)
		}
		wantC := quad.Fixed(func(u float64) float64 {
			return math.Cos(math.Pi / 2 * u * u)
		}, 0, x, 1000, quad.Legendre{}, 0)
		wantS := quad.Fixed(func(u float64) float64 {
			return math.Sin(math.Pi / 2 * u * u)
		}, 0, x, 1000, quad.Legendre{}, 0)
		if math.Abs(c-wantC) > 1e-10 {
			t.Errorf("C(%v): got %v, quadrature gives %v", x, c, wantC)
		}
		if math.Abs(s-wantS) > 1e-10 {
			t.Errorf("S(%v): got %v, quadrature gives %v", x, s, wantS)
		}
	}
}

// Arguments whose square overflows must still land on the (±0.5, ±0.5)
// limit, not NaN.
func TestFresnelHugeArgument(t *testing.T) {
	for _, x := range []float64{1.4e154, 1e200, math.MaxFloat64} {
		c, s, err := Fresnel(x)
		if err != nil {
			t.Fatalf("Fresnel(%v): got error %v, expected none", x, err)
		}
		if c != 0.5 || s != 0.5 {
			t.Errorf("Fresnel(%v): got (%v, %v), expected exactly (0.5, 0.5)", x, c, s)
		}
		c, s, err = Fresnel(-x)
		if err != nil {
			t.Fatalf("Fresnel(%v): got error %v, expected none", -x, err)
		}
		if c != -0.5 || s != -0.5 {
			t.Errorf("Fresnel(%v): got (%v, %v), expected exactly (-0.5, -0.5)", -x, c, s)
		}
	}
}

func TestFresnelNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c, s, err := Fresnel(x)
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("Fresnel(%v): got error %v, expected ErrNonFinite", x, err)
		}
		if c != 0 || s != 0 {
			t.Errorf("Fresnel(%v): got (%v, %v), expected zero outputs", x, c, s)
		}
	}
}
