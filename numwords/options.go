// Rendering configuration and the Converter it binds to.
package numwords

import (
	"errors"
	"fmt"
)

// Mode selects between counting and ranking forms.
type Mode int

const (
	// Cardinal produces counting forms ("three").
	Cardinal Mode = iota

	// Ordinal produces ranking forms ("third"). The suffix lands on the last
	// word produced: "one hundred and first", never "one hundredth and one".
	Ordinal
)

func (m Mode) String() string {
	if m == Ordinal {
		return "ordinal"
	}
	return "cardinal"
}

// Options configures a Converter. The zero value renders without a linker,
// separator or negation word; start from DefaultOptions instead.
type Options struct {
	// Scale selects the large-number naming convention.
	Scale Scale

	// Mode selects cardinal or ordinal output.
	Mode Mode

	// TwoDigitLinker joins the tens and ones words in 21–99:
	// "-" gives "twenty-one", " " gives "twenty one".
	TwoDigitLinker string

	// GroupSeparator joins two magnitude groups when the remainder is itself
	// at least one hundred: "one thousand, five hundred".
	GroupSeparator string

	// SayAnd inserts "and" before a final sub-100 remainder:
	// "one hundred and eighteen" vs "one hundred eighteen".
	SayAnd bool

	// Warn emits a diagnostic through log/slog when rendering passes the
	// largest named magnitude, where output degenerates to forms like
	// "ten duodecillion duodecillion". Rendering proceeds either way.
	Warn bool

	// Negation is the word prefixed to negative numbers,
	// NegationNegative or NegationMinus.
	Negation string
}

// DefaultOptions mirrors the conventional reading: short scale, cardinal,
// hyphenated two-digit forms, comma between magnitude groups, "and" before a
// final sub-100 remainder, "negative" for negatives.
func DefaultOptions() Options {
	return Options{
		Scale:          ShortScale,
		Mode:           Cardinal,
		TwoDigitLinker: "-",
		GroupSeparator: ",",
		SayAnd:         true,
		Negation:       NegationNegative,
	}
}

// ErrNegationWord reports a negation word outside the recognized set.
var ErrNegationWord = errors.New("numwords: unrecognized negation word")

// Converter renders integers as English words under one fixed Options value.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	opts  Options
	vocab []magnitude
}

// New validates opts and returns a Converter bound to them.
// An unrecognized Negation is rejected here, never mid-render.
func New(opts Options) (*Converter, error) {
	switch opts.Negation {
	case NegationNegative, NegationMinus:
	default:
		return nil, fmt.Errorf("%w: %q", ErrNegationWord, opts.Negation)
	}
	return &Converter{opts: opts, vocab: opts.Scale.vocabulary()}, nil
}

// Options returns the configuration the Converter was built with.
func (c *Converter) Options() Options {
	return c.opts
}
