// Package numwords converts integers to their written-English representation.
//
// The package offers two levels of API:
//
//   - Convert, ConvertOrdinal and ConvertBig render with DefaultOptions.
//   - New builds a Converter from an Options value for full control over
//     scale (short or long), cardinal vs ordinal mode, hyphenation, group
//     separators, "and" insertion and the negation word.
//
// Rendering is purely functional: the digit tables and scale vocabularies
// are built once at process start and never mutated, and configuration is
// passed explicitly rather than held in global state. All functions are safe
// for concurrent use by multiple goroutines.
//
// Inputs are arbitrary-precision: any *big.Int renders, with int64
// convenience wrappers. Named magnitudes stop at duodecillion (10^39 short
// scale, 10^75 long-scale duodecilliard); beyond the point where a quotient
// exceeds the largest named magnitude the output repeats that name
// ("ten duodecillion duodecillion"), optionally flagged via Options.Warn.
package numwords

import "math/big"

// Converters behind the package-level convenience functions.
var (
	defaultConverter = mustNew(DefaultOptions())
	ordinalConverter = mustNew(ordinalOptions())
)

func ordinalOptions() Options {
	o := DefaultOptions()
	o.Mode = Ordinal
	return o
}

func mustNew(opts Options) *Converter {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Convert returns the English cardinal text for n under DefaultOptions.
// Zero returns "zero". Negative numbers are prefixed with "negative".
func Convert(n int64) string {
	return defaultConverter.ConvertInt(n)
}

// ConvertOrdinal returns the English ordinal text for n under DefaultOptions.
// The ordinal suffix applies to the final word: 101 is "one hundred and
// first". Negative ordinals prefix "negative" to the ordinal of the
// absolute value.
func ConvertOrdinal(n int64) string {
	return ordinalConverter.ConvertInt(n)
}

// ConvertBig is Convert for arbitrary-precision inputs.
func ConvertBig(n *big.Int) string {
	return defaultConverter.Convert(n)
}
