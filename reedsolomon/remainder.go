package reedsolomon

// ComputeRemainder divides data by the divisor polynomial in GF(256) and
// returns the remainder, which is the sequence of ECC codewords for the
// data. The result has the same length as the divisor.
func ComputeRemainder(data, divisor []byte) []byte {
	if len(divisor) == 0 {
		return nil
	}
	remainder := make([]byte, len(divisor))
	for _, b := range data {
		// Polynomial long division, one input byte at a time: fold the
		// leading remainder byte into the incoming byte, shift, then
		// subtract factor*divisor.
		factor := b ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[len(remainder)-1] = 0
		for i, c := range divisor {
			remainder[i] ^= mul(c, factor)
		}
	}
	return remainder
}
