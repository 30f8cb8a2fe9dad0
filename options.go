package slabsheet

// buildOptions holds configuration applied before records are parsed.
type buildOptions struct {
	// Reverse the allowance orientation (first number becomes the
	// length deduction).
	swapAllowance bool

	// Worksheet to read from workbook input; empty means the first sheet.
	sheet string
}

// defaultOptions returns the default build options.
func defaultOptions() buildOptions {
	return buildOptions{
		swapAllowance: false,
		sheet:         "",
	}
}
