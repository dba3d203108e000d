// Package qrecc computes the Reed-Solomon codeword stream of a QR Code
// symbol: error-correction bytes over GF(256), block splitting and
// interleaving per the QR Code standard.
//
// The root package holds the shared error values; the algorithms live in
// the reedsolomon and qrcode subpackages.
package qrecc

import "errors"

var (
	// ErrRange is returned when a version, degree or field operand is
	// outside its valid range.
	ErrRange = errors.New("value out of range")

	// ErrDataLength is returned when the data codeword count does not
	// match the capacity of the requested version and level.
	ErrDataLength = errors.New("data length mismatch")

	// ErrTable is returned when a capacity table is malformed.
	ErrTable = errors.New("malformed capacity table")

	// ErrInternal is returned when a computed invariant does not hold.
	// It signals a defect in this package, not a caller error.
	ErrInternal = errors.New("internal invariant violated")
)
