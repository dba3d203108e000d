package qrcode

import (
	"fmt"

	qrecc "github.com/ecclab/qrecc"
)

// Version numbers of the smallest and largest QR code symbols.
const (
	MinVersion = 1
	MaxVersion = 40
)

// NumRawDataModules returns the number of modules available for data and
// ECC bits in a symbol of the given version, after function patterns and
// format/version information are excluded. Versions outside
// [MinVersion, MaxVersion] are rejected with qrecc.ErrRange.
func NumRawDataModules(version int) (int, error) {
	if version < MinVersion || version > MaxVersion {
		return 0, fmt.Errorf("%w: version %d", qrecc.ErrRange, version)
	}
	result := (16*version+128)*version + 64
	if version >= 2 {
		numAlign := version/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if version >= 7 {
			result -= 36
		}
	}
	if result < 208 || result > 29648 {
		return 0, fmt.Errorf("%w: raw module count %d", qrecc.ErrInternal, result)
	}
	return result, nil
}

// NumRawCodewords returns the total codeword capacity of a symbol,
// data and ECC together.
func NumRawCodewords(version int) (int, error) {
	modules, err := NumRawDataModules(version)
	if err != nil {
		return 0, err
	}
	return modules / 8, nil
}
