package reedsolomon

import (
	"github.com/townmi/reedsolomon/bitset"
)

// gfPoly is a polynomial over GF(2^8). term[i] holds the coefficient of
// x^i, so the slice runs from the lowest degree term to the highest. The
// zero polynomial has no terms at all.
//
// gfPoly values are immutable: every operation allocates fresh storage and
// leaves its operands untouched, so polynomials can be shared freely, the
// cached generator polynomials included.
type gfPoly struct {
	term []gfElement
}

// newGFPolyFromBytes builds the message polynomial for a codeword
// sequence. message[0] is the highest degree coefficient, matching the
// order in which codewords are written into a symbol.
func newGFPolyFromBytes(message []byte) gfPoly {
	numTerms := len(message)
	result := gfPoly{term: make([]gfElement, numTerms)}

	for i, value := range message {
		result.term[numTerms-1-i] = gfElement(value)
	}

	return result
}

// newGFPolyFromData interprets the bit stream as a byte sequence, highest
// degree first: the last byte becomes the x^0 coefficient.
func newGFPolyFromData(data *bitset.Bitset) (gfPoly, error) {
	numTotalBytes := data.Len() / 8
	if data.Len()%8 != 0 {
		numTotalBytes++
	}

	result := gfPoly{term: make([]gfElement, numTotalBytes)}

	i := numTotalBytes - 1
	for j := 0; j < data.Len(); j += 8 {
		value, err := data.ByteAt(j)
		if err != nil {
			return gfPoly{}, err
		}

		result.term[i] = gfElement(value)
		i--
	}

	return result, nil
}

// newGFPolyMonomial returns term*x^degree.
func newGFPolyMonomial(term gfElement, degree int) gfPoly {
	if term == gfZero {
		return gfPoly{}
	}

	result := gfPoly{term: make([]gfElement, degree+1)}
	result.term[degree] = term

	return result
}

// data returns the numTerms lowest degree coefficients as bytes, highest
// degree first, left padded with zeros up to numTerms. This is the shape
// in which correction codewords are emitted.
func (e gfPoly) data(numTerms int) []byte {
	result := make([]byte, numTerms)

	i := numTerms - len(e.term)
	for j := len(e.term) - 1; j >= 0; j-- {
		result[i] = byte(e.term[j])
		i++
	}

	return result
}

func (e gfPoly) numTerms() int {
	return len(e.term)
}

// degree returns the degree of the polynomial, or -1 for the zero
// polynomial.
func (e gfPoly) degree() int {
	return len(e.term) - 1
}

// evaluate computes e(x) by Horner's method.
func (e gfPoly) evaluate(x gfElement) gfElement {
	if len(e.term) == 0 {
		return gfZero
	}

	result := e.term[len(e.term)-1]
	for i := len(e.term) - 2; i >= 0; i-- {
		result = gfAdd(gfMultiply(result, x), e.term[i])
	}

	return result
}

func (e gfPoly) equals(other gfPoly) bool {
	a := e.normalised()
	b := other.normalised()

	if len(a.term) != len(b.term) {
		return false
	}

	for i := range a.term {
		if a.term[i] != b.term[i] {
			return false
		}
	}

	return true
}

// gfPolyAdd returns a + b. The shorter operand is implicitly padded with
// zero coefficients, and the sum is trimmed of trailing zero terms.
func gfPolyAdd(a, b gfPoly) gfPoly {
	numATerms := a.numTerms()
	numBTerms := b.numTerms()

	numTerms := numATerms
	if numBTerms > numTerms {
		numTerms = numBTerms
	}

	result := gfPoly{term: make([]gfElement, numTerms)}

	for i := 0; i < numTerms; i++ {
		switch {
		case numATerms > i && numBTerms > i:
			result.term[i] = gfAdd(a.term[i], b.term[i])
		case numATerms > i:
			result.term[i] = a.term[i]
		default:
			result.term[i] = b.term[i]
		}
	}

	return result.normalised()
}

// gfPolySub returns a - b. Coefficient subtraction is XOR, so this is the
// same operation as gfPolyAdd.
func gfPolySub(a, b gfPoly) gfPoly {
	return gfPolyAdd(a, b)
}

// gfPolyMultiply returns a * b by convolving the coefficient sequences.
func gfPolyMultiply(a, b gfPoly) gfPoly {
	if a.numTerms() == 0 || b.numTerms() == 0 {
		return gfPoly{}
	}

	result := gfPoly{term: make([]gfElement, a.numTerms()+b.numTerms()-1)}

	for i := 0; i < a.numTerms(); i++ {
		if a.term[i] == gfZero {
			continue
		}
		for j := 0; j < b.numTerms(); j++ {
			product := gfMultiply(a.term[i], b.term[j])
			result.term[i+j] = gfAdd(result.term[i+j], product)
		}
	}

	return result.normalised()
}

// gfPolyDivide performs long division of numerator by denominator and
// returns the quotient and remainder. The denominator must be nonzero with
// a nonzero leading coefficient, otherwise ErrDivideByZero is returned.
//
// Each round cancels the running numerator's leading term against the
// denominator's, strictly lowering its degree, so the loop terminates with
// degree(remainder) < degree(denominator).
func gfPolyDivide(numerator, denominator gfPoly) (quotient, remainder gfPoly, err error) {
	numDenomTerms := denominator.numTerms()
	if numDenomTerms == 0 || denominator.term[numDenomTerms-1] == gfZero {
		return gfPoly{}, gfPoly{}, ErrDivideByZero
	}

	remainder = numerator.normalised()

	for remainder.numTerms() >= numDenomTerms {
		degree := remainder.numTerms() - numDenomTerms

		coefficient, err := gfDivide(remainder.term[remainder.numTerms()-1],
			denominator.term[numDenomTerms-1])
		if err != nil {
			return gfPoly{}, gfPoly{}, err
		}

		factor := newGFPolyMonomial(coefficient, degree)
		quotient = gfPolyAdd(quotient, factor)
		remainder = gfPolySub(remainder, gfPolyMultiply(denominator, factor))
	}

	return quotient, remainder, nil
}

// gfPolyRemainder returns only the remainder of dividing numerator by
// denominator. The encode path discards the quotient.
func gfPolyRemainder(numerator, denominator gfPoly) (gfPoly, error) {
	_, remainder, err := gfPolyDivide(numerator, denominator)
	return remainder, err
}

// normalised trims trailing zero terms so the highest remaining term is
// nonzero. The backing array is shared with the receiver but never
// modified.
func (e gfPoly) normalised() gfPoly {
	numTerms := e.numTerms()
	maxNonzeroTerm := numTerms - 1

	for i := numTerms - 1; i >= 0; i-- {
		if e.term[i] != gfZero {
			break
		}

		maxNonzeroTerm = i - 1
	}

	if maxNonzeroTerm < 0 {
		return gfPoly{}
	} else if maxNonzeroTerm < numTerms-1 {
		e.term = e.term[0 : maxNonzeroTerm+1]
	}

	return e
}
