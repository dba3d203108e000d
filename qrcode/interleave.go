package qrcode

import (
	"fmt"

	qrecc "github.com/ecclab/qrecc"
	"github.com/ecclab/qrecc/reedsolomon"
)

// AddECCAndInterleave splits data into blocks, appends each block's
// Reed-Solomon ECC codewords, and interleaves the blocks into the raw
// codeword stream that the module-placement stage consumes.
//
// data must hold exactly NumDataCodewords(version, level) bytes; any
// other length is rejected with qrecc.ErrDataLength. The result always
// holds the symbol's full raw codeword capacity.
func (t *CapacityTables) AddECCAndInterleave(data []byte, version int, level ErrorCorrectionLevel) ([]byte, error) {
	numDataCodewords, err := t.NumDataCodewords(version, level)
	if err != nil {
		return nil, err
	}
	if len(data) != numDataCodewords {
		return nil, fmt.Errorf("%w: got %d data codewords, version %d level %s takes %d",
			qrecc.ErrDataLength, len(data), version, level, numDataCodewords)
	}

	blockEccLen := t.ECCodewordsPerBlock[level.Ordinal()][version]
	numBlocks := t.NumBlocks[level.Ordinal()][version]
	rawCodewords, err := NumRawCodewords(version)
	if err != nil {
		return nil, err
	}

	// When rawCodewords does not divide evenly, the first blocks carry
	// one data byte less than the rest.
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks
	shortBlockDataLen := shortBlockLen - blockEccLen
	if shortBlockDataLen < 1 {
		return nil, fmt.Errorf("%w: block too small for %d ECC codewords at version %d level %s",
			qrecc.ErrTable, blockEccLen, version, level)
	}

	divisor, err := reedsolomon.ComputeDivisor(blockEccLen)
	if err != nil {
		return nil, err
	}

	// Build every block at the uniform length shortBlockLen+1: short
	// blocks get a zero pad byte between data and ECC, which exists only
	// to line up positions and is skipped below.
	blocks := make([][]byte, numBlocks)
	for i, k := 0, 0; i < numBlocks; i++ {
		dataLen := shortBlockDataLen
		if i >= numShortBlocks {
			dataLen++
		}
		block := make([]byte, 0, shortBlockLen+1)
		block = append(block, data[k:k+dataLen]...)
		k += dataLen
		if i < numShortBlocks {
			block = append(block, 0)
		}
		block = append(block, reedsolomon.ComputeRemainder(data[k-dataLen:k], divisor)...)
		blocks[i] = block
	}

	result := make([]byte, 0, rawCodewords)
	for i := 0; i <= shortBlockLen; i++ {
		for j, block := range blocks {
			if i == shortBlockDataLen && j < numShortBlocks {
				continue // pad position of a short block
			}
			result = append(result, block[i])
		}
	}
	if len(result) != rawCodewords {
		return nil, fmt.Errorf("%w: interleaved %d codewords, want %d",
			qrecc.ErrInternal, len(result), rawCodewords)
	}
	return result, nil
}

// AddECCAndInterleave assembles the raw codeword stream per the standard
// tables.
func AddECCAndInterleave(data []byte, version int, level ErrorCorrectionLevel) ([]byte, error) {
	return Standard.AddECCAndInterleave(data, version, level)
}
