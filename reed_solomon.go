// Package reedsolomon computes the Reed-Solomon error correction codewords
// embedded in QR code symbols.
//
// QR codes protect their data codewords with a Reed-Solomon code over
// GF(2^8), built on the primitive polynomial 0x11d. The data bytes become
// the coefficients of a message polynomial, the message is shifted past the
// generator polynomial's degree, and the remainder of dividing by the
// generator is emitted as the error correction codewords. Mode encoding,
// block interleaving, matrix placement and masking are the caller's
// concern.
package reedsolomon

import (
	"errors"
	"sync"

	"github.com/townmi/reedsolomon/bitset"
)

var (
	// ErrDivideByZero is returned when a field element or polynomial is
	// divided by zero. A well formed generator polynomial always has a
	// nonzero leading coefficient, so hitting this indicates a bug in the
	// caller.
	ErrDivideByZero = errors.New("reedsolomon: divide by zero")

	// ErrInvalidDegree is returned when a generator polynomial of
	// non-positive degree is requested.
	ErrInvalidDegree = errors.New("reedsolomon: generator degree must be positive")

	// ErrInvalidInput is returned for an empty message or a non-positive
	// error correction codeword count.
	ErrInvalidInput = errors.New("reedsolomon: empty message or non-positive codeword count")
)

// ComputeErrorCorrection returns exactly numECCodewords error correction
// codewords for message. message[0] is the highest degree coefficient of
// the message polynomial and the returned slice is ordered the same way,
// ready to be placed after the data codewords of a block.
func ComputeErrorCorrection(message []byte, numECCodewords int) ([]byte, error) {
	if len(message) == 0 || numECCodewords <= 0 {
		return nil, ErrInvalidInput
	}

	msgPoly := newGFPolyFromBytes(message)

	// Shift the message left so the correction codewords fit below it.
	dividend := gfPolyMultiply(msgPoly, newGFPolyMonomial(gfOne, numECCodewords))

	generator, err := generatorPoly(numECCodewords)
	if err != nil {
		return nil, err
	}

	remainder, err := gfPolyRemainder(dividend, generator)
	if err != nil {
		return nil, err
	}

	return remainder.data(numECCodewords), nil
}

// Encode appends numECBytes of error correction to data and returns the
// combined codeword stream.
func Encode(data *bitset.Bitset, numECBytes int) (*bitset.Bitset, error) {
	if data.Len() == 0 || numECBytes <= 0 {
		return nil, ErrInvalidInput
	}

	ecpoly, err := newGFPolyFromData(data)
	if err != nil {
		return nil, err
	}
	ecpoly = gfPolyMultiply(ecpoly, newGFPolyMonomial(gfOne, numECBytes))

	generator, err := generatorPoly(numECBytes)
	if err != nil {
		return nil, err
	}

	remainder, err := gfPolyRemainder(ecpoly, generator)
	if err != nil {
		return nil, err
	}

	// Append the remainder bytes to a copy of the original data rather
	// than adding the polynomials, so any most significant zero bits of
	// data are preserved.
	result := bitset.Clone(data)
	result.AppendBytes(remainder.data(numECBytes))

	return result, nil
}

// rsGeneratorPoly builds the generator polynomial of the given degree, the
// product of (x - 2^i) for i = 0 .. degree-1. The result has exactly
// degree+1 coefficients and a leading coefficient of 1.
func rsGeneratorPoly(degree int) (gfPoly, error) {
	if degree <= 0 {
		return gfPoly{}, ErrInvalidDegree
	}

	generator := gfPoly{term: []gfElement{1}}

	for i := 0; i < degree; i++ {
		nextPoly := gfPoly{term: []gfElement{gfPower(2, i), 1}}
		generator = gfPolyMultiply(generator, nextPoly)
	}

	return generator, nil
}

// Generator polynomials depend only on their degree, so each is built once
// and shared across encodes. Sharing is safe: gfPoly operations never
// modify their operands.
var (
	generatorMu    sync.Mutex
	generatorCache = map[int]gfPoly{}
)

func generatorPoly(degree int) (gfPoly, error) {
	generatorMu.Lock()
	defer generatorMu.Unlock()

	if generator, ok := generatorCache[degree]; ok {
		return generator, nil
	}

	generator, err := rsGeneratorPoly(degree)
	if err != nil {
		return gfPoly{}, err
	}

	generatorCache[degree] = generator
	return generator, nil
}
