package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ruvello/slabsheet"
)

// feedInput routes the chosen input source into the builder: parallel
// length/height column files, stdin, or a file of any supported kind.
func feedInput(b *slabsheet.Builder, input, lengthsFile, heightsFile string) error {
	switch {
	case lengthsFile != "" || heightsFile != "":
		if lengthsFile == "" || heightsFile == "" {
			return errors.New("--lengths and --heights must be given together")
		}
		lengths, err := os.ReadFile(lengthsFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", lengthsFile, err)
		}
		heights, err := os.ReadFile(heightsFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", heightsFile, err)
		}
		b.Columns(string(lengths), string(heights))

	case input == "":
		return errors.New("no input: use --input FILE, --input - for stdin, or --lengths with --heights")

	case input == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		b.Input(data, "")

	default:
		b.InputFile(input)
	}
	return nil
}
