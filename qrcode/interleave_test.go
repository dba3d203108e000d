package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrecc "github.com/ecclab/qrecc"
)

func TestAddECCAndInterleaveHello(t *testing.T) {
	t.Parallel()

	// "HELLO" in byte mode, bit-packed into the 19 data codewords of a
	// version 1-L symbol (mode indicator, count, payload, terminator and
	// alternating pad bytes). The expected stream is the symbol's full
	// 26-codeword content: one block, so data followed by its 7 ECC
	// codewords.
	data := []byte{
		64, 84, 132, 84, 196, 196, 240, 236, 17, 236,
		17, 236, 17, 236, 17, 236, 17, 236, 17,
	}
	want := append(append([]byte{}, data...), 77, 42, 211, 187, 159, 32, 132)

	got, err := AddECCAndInterleave(data, 1, ECLevelL)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAddECCAndInterleaveShortAndLongBlocks(t *testing.T) {
	t.Parallel()

	// Version 5-Q: 134 raw codewords in 4 blocks of 18 ECC codewords,
	// so two short blocks of 15 data bytes and two long ones of 16.
	data := make([]byte, 62)
	for i := range data {
		data[i] = byte(i)
	}
	want := []byte{
		0, 15, 30, 46, 1, 16, 31, 47, 2, 17, 32, 48, 3, 18, 33, 49,
		4, 19, 34, 50, 5, 20, 35, 51, 6, 21, 36, 52, 7, 22, 37, 53,
		8, 23, 38, 54, 9, 24, 39, 55, 10, 25, 40, 56, 11, 26, 41, 57,
		12, 27, 42, 58, 13, 28, 43, 59, 14, 29, 44, 60, 45, 61,
		130, 85, 18, 68, 32, 216, 2, 224, 57, 131, 146, 231, 226, 28,
		45, 112, 33, 81, 123, 173, 156, 77, 16, 95, 128, 94, 142, 235,
		158, 171, 131, 68, 216, 213, 65, 131, 211, 75, 97, 242, 13, 249,
		218, 131, 67, 118, 220, 87, 241, 74, 235, 110, 175, 28, 199, 110,
		158, 36, 3, 65, 188, 164, 223, 29, 139, 168, 149, 132, 103, 154,
		138, 19,
	}

	got, err := AddECCAndInterleave(data, 5, ECLevelQ)
	require.NoError(t, err)
	require.Len(t, got, 134)
	assert.Equal(t, want, got)

	// The pad byte of a short block must never surface: every data byte
	// appears exactly once and in the interleaved order above, so the
	// two data positions following byte 60 belong to the long blocks.
	assert.Equal(t, byte(45), got[60])
	assert.Equal(t, byte(61), got[61])
}

func TestAddECCAndInterleaveSingleBlockBoundary(t *testing.T) {
	t.Parallel()

	// Version 1-H: maximum redundancy, one block, 9 data codewords.
	n, err := NumDataCodewords(1, ECLevelH)
	require.NoError(t, err)
	require.Equal(t, 9, n)

	data := make([]byte, n)
	for i := range data {
		data[i] = byte(0x10 + i)
	}
	got, err := AddECCAndInterleave(data, 1, ECLevelH)
	require.NoError(t, err)
	require.Len(t, got, 26)
	assert.Equal(t, data, got[:n], "single block keeps data order")
}

func TestAddECCAndInterleaveOutputLength(t *testing.T) {
	t.Parallel()

	for version := MinVersion; version <= MaxVersion; version++ {
		rawCodewords, err := NumRawCodewords(version)
		require.NoError(t, err)
		for _, level := range allLevels {
			n, err := NumDataCodewords(version, level)
			require.NoError(t, err)
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i*31 + 7)
			}
			got, err := AddECCAndInterleave(data, version, level)
			require.NoError(t, err, "version %d level %s", version, level)
			if len(got) != rawCodewords {
				t.Fatalf("version %d level %s: %d codewords, want %d",
					version, level, len(got), rawCodewords)
			}
		}
	}
}

func TestAddECCAndInterleaveDeterministic(t *testing.T) {
	t.Parallel()

	data := make([]byte, 62)
	for i := range data {
		data[i] = byte(i * 3)
	}
	first, err := AddECCAndInterleave(data, 5, ECLevelQ)
	require.NoError(t, err)
	second, err := AddECCAndInterleave(data, 5, ECLevelQ)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAddECCAndInterleaveRejectsBadArguments(t *testing.T) {
	t.Parallel()

	_, err := AddECCAndInterleave(make([]byte, 19), 0, ECLevelL)
	require.ErrorIs(t, err, qrecc.ErrRange)
	_, err = AddECCAndInterleave(make([]byte, 19), 41, ECLevelL)
	require.ErrorIs(t, err, qrecc.ErrRange)
	_, err = AddECCAndInterleave(make([]byte, 19), 1, ErrorCorrectionLevel(7))
	require.ErrorIs(t, err, qrecc.ErrRange)

	// Version 1-L takes exactly 19 data codewords.
	_, err = AddECCAndInterleave(make([]byte, 18), 1, ECLevelL)
	require.ErrorIs(t, err, qrecc.ErrDataLength)
	_, err = AddECCAndInterleave(make([]byte, 20), 1, ECLevelL)
	require.ErrorIs(t, err, qrecc.ErrDataLength)
	_, err = AddECCAndInterleave(nil, 1, ECLevelL)
	require.ErrorIs(t, err, qrecc.ErrDataLength)
}
