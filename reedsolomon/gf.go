// Package reedsolomon implements Reed-Solomon error-correction encoding
// over the GF(256) field used by QR Codes.
package reedsolomon

import (
	"fmt"

	qrecc "github.com/ecclab/qrecc"
)

// Primitive is the reducing polynomial of the QR Code field,
// x^8 + x^4 + x^3 + x^2 + 1.
const Primitive = 0x11D

// Multiply returns x * y in GF(256) modulo Primitive. Operands outside
// [0, 255] are rejected with qrecc.ErrRange.
func Multiply(x, y int) (int, error) {
	if x>>8 != 0 || x < 0 {
		return 0, fmt.Errorf("%w: field operand %d", qrecc.ErrRange, x)
	}
	if y>>8 != 0 || y < 0 {
		return 0, fmt.Errorf("%w: field operand %d", qrecc.ErrRange, y)
	}
	return int(mul(byte(x), byte(y))), nil
}

// mul is the carry-less Russian-peasant product. For every bit of y from
// most to least significant the accumulator is doubled, reducing modulo
// Primitive on overflow, then x is folded in when the bit is set.
func mul(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = (z << 1) ^ ((z >> 7) * Primitive)
		z ^= (int(y>>i) & 1) * int(x)
	}
	return byte(z)
}
