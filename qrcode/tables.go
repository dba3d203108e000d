package qrcode

import (
	"fmt"

	qrecc "github.com/ecclab/qrecc"
)

// CapacityTables holds the standard-defined error-correction layout
// constants, indexed by [level.Ordinal()][version]. Index 0 of each row is
// unused. The tables are treated as immutable; callers needing different
// conformance constants supply their own value instead of mutating
// Standard.
type CapacityTables struct {
	// ECCodewordsPerBlock is the number of ECC codewords appended to each
	// block at a given level and version.
	ECCodewordsPerBlock [4][MaxVersion + 1]int

	// NumBlocks is the number of Reed-Solomon blocks the data codewords
	// are split into at a given level and version.
	NumBlocks [4][MaxVersion + 1]int
}

// Standard contains the constants of the QR Code standard (versions 1-40,
// levels L, M, Q, H).
var Standard = &CapacityTables{
	ECCodewordsPerBlock: [4][MaxVersion + 1]int{
		// L
		{0, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		// M
		{0, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		// Q
		{0, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		// H
		{0, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	},
	NumBlocks: [4][MaxVersion + 1]int{
		// L
		{0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		// M
		{0, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		// Q
		{0, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		// H
		{0, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	},
}

// entry returns the ECC-per-block and block count for one (version, level)
// pair after checking that the pair and the table entries are usable.
func (t *CapacityTables) entry(version int, level ErrorCorrectionLevel) (eccLen, numBlocks int, err error) {
	if !level.Valid() {
		return 0, 0, fmt.Errorf("%w: error correction level %d", qrecc.ErrRange, int(level))
	}
	if version < MinVersion || version > MaxVersion {
		return 0, 0, fmt.Errorf("%w: version %d", qrecc.ErrRange, version)
	}
	eccLen = t.ECCodewordsPerBlock[level.Ordinal()][version]
	numBlocks = t.NumBlocks[level.Ordinal()][version]
	if eccLen < 1 || eccLen > 255 {
		return 0, 0, fmt.Errorf("%w: %d ECC codewords per block for version %d level %s",
			qrecc.ErrTable, eccLen, version, level)
	}
	if numBlocks < 1 {
		return 0, 0, fmt.Errorf("%w: %d blocks for version %d level %s",
			qrecc.ErrTable, numBlocks, version, level)
	}
	return eccLen, numBlocks, nil
}

// NumDataCodewords returns the number of data codewords a symbol of the
// given version and level can carry, after ECC codewords are subtracted.
func (t *CapacityTables) NumDataCodewords(version int, level ErrorCorrectionLevel) (int, error) {
	eccLen, numBlocks, err := t.entry(version, level)
	if err != nil {
		return 0, err
	}
	rawCodewords, err := NumRawCodewords(version)
	if err != nil {
		return 0, err
	}
	n := rawCodewords - eccLen*numBlocks
	if n < 1 {
		return 0, fmt.Errorf("%w: no data codewords for version %d level %s",
			qrecc.ErrTable, version, level)
	}
	return n, nil
}

// Validate checks every (version, level) entry for consistency with the
// version's raw codeword capacity: positive block counts, ECC lengths in
// [1, 255], and at least one data codeword per block.
func (t *CapacityTables) Validate() error {
	for version := MinVersion; version <= MaxVersion; version++ {
		rawCodewords, err := NumRawCodewords(version)
		if err != nil {
			return err
		}
		for _, level := range []ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH} {
			eccLen, numBlocks, err := t.entry(version, level)
			if err != nil {
				return err
			}
			if rawCodewords/numBlocks-eccLen < 1 {
				return fmt.Errorf("%w: block too small for %d ECC codewords at version %d level %s",
					qrecc.ErrTable, eccLen, version, level)
			}
		}
	}
	return nil
}

// NumDataCodewords returns the data codeword capacity per the standard
// tables.
func NumDataCodewords(version int, level ErrorCorrectionLevel) (int, error) {
	return Standard.NumDataCodewords(version, level)
}
