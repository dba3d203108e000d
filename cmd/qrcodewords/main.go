package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ecclab/qrecc/qrcode"
)

func main() {
	version := flag.Int("version", 1, "QR version (1-40)")
	levelName := flag.String("level", "M", "error correction level (L, M, Q, H)")
	capacity := flag.Bool("capacity", false, "print codeword capacities for the version/level and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrcodewords [flags] [hex-data-codewords]\n\n")
		fmt.Fprintf(os.Stderr, "Compute the interleaved Reed-Solomon codeword stream of a QR symbol\n")
		fmt.Fprintf(os.Stderr, "from its data codewords, given as hex on the command line or stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := parseLevel(*levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *capacity {
		if err := printCapacity(*version, level); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	data, err := readData(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	codewords, err := qrcode.AddECCAndInterleave(data, *version, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(codewords))
}

func parseLevel(name string) (qrcode.ErrorCorrectionLevel, error) {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.ECLevelL, nil
	case "M":
		return qrcode.ECLevelM, nil
	case "Q":
		return qrcode.ECLevelQ, nil
	case "H":
		return qrcode.ECLevelH, nil
	}
	return 0, fmt.Errorf("unknown error correction level %q", name)
}

func printCapacity(version int, level qrcode.ErrorCorrectionLevel) error {
	rawCodewords, err := qrcode.NumRawCodewords(version)
	if err != nil {
		return err
	}
	dataCodewords, err := qrcode.NumDataCodewords(version, level)
	if err != nil {
		return err
	}
	fmt.Printf("version %d level %s: %d data codewords, %d total\n",
		version, level, dataCodewords, rawCodewords)
	return nil
}

// readData decodes the data codewords from the argument list, or from
// stdin when no arguments are given.
func readData(args []string) ([]byte, error) {
	var in string
	if len(args) > 0 {
		in = strings.Join(args, "")
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		in = string(raw)
	}
	in = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, in)
	data, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
