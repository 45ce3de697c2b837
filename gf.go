package reedsolomon

// GF(2^8) arithmetic for QR code error correction. The field is generated
// by the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11d), with 2 as
// the primitive element.

type gfElement byte

const (
	gfZero = gfElement(0)
	gfOne  = gfElement(1)
)

const primitivePolynomial = 0x11d

// Log/antilog tables for multiplication and division. Filled once at
// startup, read only afterwards.
var (
	gfExpTable [256]gfElement
	gfLogTable [256]int
)

func init() {
	v := 1
	for i := 0; i < 255; i++ {
		gfExpTable[i] = gfElement(v)
		gfLogTable[v] = i

		v *= 2
		if v >= 256 {
			v ^= primitivePolynomial
		}
	}
}

// gfAdd returns a + b. The field has characteristic two, so addition is XOR.
func gfAdd(a, b gfElement) gfElement {
	return a ^ b
}

// gfSub returns a - b. Every element is its own additive inverse, so
// subtraction is the same XOR as addition.
func gfSub(a, b gfElement) gfElement {
	return a ^ b
}

// gfMultiply returns a * b. Zero is absorbing.
func gfMultiply(a, b gfElement) gfElement {
	if a == gfZero || b == gfZero {
		return gfZero
	}
	return gfExpTable[(gfLogTable[a]+gfLogTable[b])%255]
}

// gfDivide returns a / b, or ErrDivideByZero when b is zero.
func gfDivide(a, b gfElement) (gfElement, error) {
	if b == gfZero {
		return gfZero, ErrDivideByZero
	}
	if a == gfZero {
		return gfZero, nil
	}
	return gfExpTable[(gfLogTable[a]-gfLogTable[b]+255)%255], nil
}

// gfPower returns a**n by repeated multiplication. gfPower(a, 0) is 1 for
// every a, including zero.
func gfPower(a gfElement, n int) gfElement {
	result := gfOne
	for i := 0; i < n; i++ {
		result = gfMultiply(result, a)
	}
	return result
}
