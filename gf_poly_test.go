package reedsolomon

import (
	"testing"
	"testing/quick"
)

func TestGFPolyAdd(t *testing.T) {
	a := gfPoly{term: []gfElement{1, 2, 3}}
	b := gfPoly{term: []gfElement{5, 7}}

	sum := gfPolyAdd(a, b)
	want := gfPoly{term: []gfElement{4, 5, 3}}
	if !sum.equals(want) {
		t.Errorf("sum = %v, want %v", sum.term, want.term)
	}

	// Operands are untouched.
	if a.term[0] != 1 || a.term[1] != 2 || b.term[0] != 5 {
		t.Error("gfPolyAdd modified an operand")
	}

	// Addition is self inverse, and the all-zero sum trims to the zero
	// polynomial.
	if gfPolyAdd(a, a).numTerms() != 0 {
		t.Error("a + a is not the zero polynomial")
	}

	if !gfPolySub(a, b).equals(sum) {
		t.Error("subtraction differs from addition")
	}
}

func TestGFPolyMultiply(t *testing.T) {
	// (x + 1)(x + 2) = x^2 + 3x + 2.
	a := gfPoly{term: []gfElement{1, 1}}
	b := gfPoly{term: []gfElement{2, 1}}

	got := gfPolyMultiply(a, b)
	want := gfPoly{term: []gfElement{2, 3, 1}}
	if !got.equals(want) {
		t.Errorf("product = %v, want %v", got.term, want.term)
	}

	if gfPolyMultiply(a, gfPoly{}).numTerms() != 0 {
		t.Error("a * 0 is not the zero polynomial")
	}

	// Multiplying by x^3 shifts the coefficients up.
	shifted := gfPolyMultiply(a, newGFPolyMonomial(gfOne, 3))
	if !shifted.equals(gfPoly{term: []gfElement{0, 0, 0, 1, 1}}) {
		t.Errorf("shift = %v, want [0 0 0 1 1]", shifted.term)
	}
}

func TestGFPolyDivide(t *testing.T) {
	// x^4 + 15x^3 + 54x^2 + 120x + 64 is (x^2 + 3x + 2)(x^2 + 12x + 32).
	numerator := newGFPolyFromBytes([]byte{1, 15, 54, 120, 64})
	denominator := newGFPolyFromBytes([]byte{1, 3, 2})

	quotient, remainder, err := gfPolyDivide(numerator, denominator)
	if err != nil {
		t.Fatal(err)
	}
	if !quotient.equals(newGFPolyFromBytes([]byte{1, 12, 32})) {
		t.Errorf("quotient = %v, want [32 12 1]", quotient.term)
	}
	if remainder.numTerms() != 0 {
		t.Errorf("remainder = %v, want zero polynomial", remainder.term)
	}

	// Perturbing the constant term leaves the quotient alone and shows up
	// in the remainder.
	quotient, remainder, err = gfPolyDivide(newGFPolyFromBytes([]byte{1, 15, 54, 120, 65}), denominator)
	if err != nil {
		t.Fatal(err)
	}
	if !quotient.equals(newGFPolyFromBytes([]byte{1, 12, 32})) {
		t.Errorf("quotient = %v, want [32 12 1]", quotient.term)
	}
	if !remainder.equals(gfPoly{term: []gfElement{1}}) {
		t.Errorf("remainder = %v, want [1]", remainder.term)
	}
}

func TestGFPolyDivideByZero(t *testing.T) {
	p := newGFPolyFromBytes([]byte{1, 2, 3})

	if _, _, err := gfPolyDivide(p, gfPoly{}); err != ErrDivideByZero {
		t.Errorf("divide by empty polynomial: got %v, want ErrDivideByZero", err)
	}

	// A divisor with a zero leading coefficient is rejected too.
	bad := gfPoly{term: []gfElement{1, 0}}
	if _, _, err := gfPolyDivide(p, bad); err != ErrDivideByZero {
		t.Errorf("divide by zero-led polynomial: got %v, want ErrDivideByZero", err)
	}
}

func TestGFPolyDivideRoundTrip(t *testing.T) {
	divisor := newGFPolyFromBytes([]byte{1, 3, 2})

	f := func(msg []byte) bool {
		numerator := newGFPolyFromBytes(msg)

		quotient, remainder, err := gfPolyDivide(numerator, divisor)
		if err != nil {
			return false
		}
		if remainder.degree() >= divisor.degree() {
			return false
		}

		return gfPolyAdd(gfPolyMultiply(quotient, divisor), remainder).equals(numerator)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGFPolyEvaluate(t *testing.T) {
	// 2x^2 + 3x + 4 at a few points, checked by hand.
	p := newGFPolyFromBytes([]byte{2, 3, 4})

	if got := p.evaluate(5); got != 41 {
		t.Errorf("p(5) = %d, want 41", got)
	}
	if got := p.evaluate(0); got != 4 {
		t.Errorf("p(0) = %d, want 4", got)
	}
	if got := (gfPoly{}).evaluate(3); got != gfZero {
		t.Errorf("zero polynomial evaluates to %d, want 0", got)
	}
}

func TestGFPolyData(t *testing.T) {
	p := gfPoly{term: []gfElement{7, 5}}

	got := p.data(4)
	want := []byte{0, 0, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("data(4) = %v, want %v", got, want)
		}
	}
}

func TestGFPolyNormalised(t *testing.T) {
	p := gfPoly{term: []gfElement{1, 2, 0, 0}}

	n := p.normalised()
	if n.numTerms() != 2 || n.degree() != 1 {
		t.Errorf("normalised has %d terms, want 2", n.numTerms())
	}

	// The receiver keeps its own term slice length.
	if p.numTerms() != 4 {
		t.Error("normalised modified the receiver")
	}

	if (gfPoly{term: []gfElement{0, 0}}).normalised().numTerms() != 0 {
		t.Error("all-zero polynomial does not normalise to zero")
	}
}
