// Recursive rendering of integers as English words.
package numwords

import (
	"log/slog"
	"math/big"
	"strings"
)

const growRender = 96 // estimated bytes for a typical rendering

var bigHundred = big.NewInt(100)

// Convert returns the English words for n under the Converter's options.
func (c *Converter) Convert(n *big.Int) string {
	return c.render(n, c.opts.Mode)
}

// ConvertInt is Convert for int64 inputs.
func (c *Converter) ConvertInt(n int64) string {
	return c.render(big.NewInt(n), c.opts.Mode)
}

// render walks n by magnitude groups. mode is threaded through recursive
// calls so an ordinal suffix lands only on the last word produced; the
// quotient before a scale name always renders cardinal.
func (c *Converter) render(n *big.Int, mode Mode) string {
	if n.Sign() < 0 {
		return c.opts.Negation + " " + c.render(new(big.Int).Neg(n), mode)
	}

	if n.Cmp(bigHundred) < 0 {
		return c.renderSmall(n.Int64(), mode)
	}

	// n >= 100, so at least the hundred entry applies.
	mag, _ := greatestRelevant(c.vocab, n)
	quo, rem := new(big.Int).QuoRem(n, mag.threshold, new(big.Int))

	if c.opts.Warn && quo.Cmp(mag.threshold) >= 0 {
		// Past the largest named magnitude the quotient carries its own scale
		// name, yielding "X duodecillion duodecillion"-style output.
		slog.Warn("numwords: scale overflow",
			"n", n.String(),
			"quotient", quo.String(),
			"threshold", mag.threshold.String(),
		)
	}

	var b strings.Builder
	b.Grow(growRender)
	b.WriteString(c.render(quo, Cardinal))
	b.WriteByte(' ')

	if rem.Sign() == 0 {
		if mode == Ordinal {
			b.WriteString(applySuffix(mag.name, suffixTh))
		} else {
			b.WriteString(mag.name)
		}
		return b.String()
	}

	b.WriteString(mag.name)
	switch {
	case rem.Cmp(bigHundred) >= 0:
		// The remainder is a named group of its own.
		b.WriteString(c.opts.GroupSeparator)
		b.WriteByte(' ')
	case c.opts.SayAnd:
		b.WriteByte(' ')
		b.WriteString(wordAnd)
		b.WriteByte(' ')
	default:
		b.WriteByte(' ')
	}
	b.WriteString(c.render(rem, mode))
	return b.String()
}

// renderSmall writes a number in [0, 99] from the digit tables.
func (c *Converter) renderSmall(v int64, mode Mode) string {
	switch {
	case v < 10:
		return ones.pick(mode)[v]
	case v < 20:
		return teens.pick(mode)[v-10]
	}
	t, o := v/10, v%10
	if o == 0 {
		return tens.pick(mode)[t]
	}
	return tens.cardinal[t] + c.opts.TwoDigitLinker + c.renderSmall(o, mode)
}
