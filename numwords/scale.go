// Scale vocabularies: named powers of ten under short and long conventions.
package numwords

import (
	"math/big"
	"slices"
)

// Scale selects a large-number naming convention.
// See https://en.wikipedia.org/wiki/Long_and_short_scales
type Scale int

const (
	// ShortScale names 10^(3n+3) the n-th illion: million, billion, trillion.
	ShortScale Scale = iota

	// LongScale names 10^(6n) the n-th illion and 10^(6n+3) the n-th illiard,
	// a thousand n-illion: million, milliard, billion, billiard.
	LongScale
)

func (s Scale) String() string {
	if s == LongScale {
		return "long"
	}
	return "short"
}

// illionPrefixes maps the index n (1–12) to the prefix of the n-th
// large-number name. Index 0 is unused.
var illionPrefixes = [13]string{
	"",
	"m",
	"b",
	"tr",
	"quadr",
	"quint",
	"sext",
	"sept",
	"oct",
	"non",
	"dec",
	"undec",
	"duodec",
}

// magnitude is one named power of ten.
type magnitude struct {
	threshold *big.Int
	name      string
}

// Vocabularies for both scales, built once at process start and sorted by
// descending threshold so the greatest relevant entry for x is the first
// entry no greater than x.
var (
	shortVocabulary = buildVocabulary(ShortScale)
	longVocabulary  = buildVocabulary(LongScale)
)

func (s Scale) vocabulary() []magnitude {
	if s == LongScale {
		return longVocabulary
	}
	return shortVocabulary
}

func buildVocabulary(s Scale) []magnitude {
	vocab := []magnitude{
		{threshold: big.NewInt(100), name: wordHundred},
		{threshold: big.NewInt(1000), name: wordThousand},
	}
	for n := 1; n < len(illionPrefixes); n++ {
		prefix := illionPrefixes[n]
		if s == ShortScale {
			vocab = append(vocab, magnitude{powerOfTen(3*n + 3), prefix + "illion"})
			continue
		}
		vocab = append(vocab, magnitude{powerOfTen(6 * n), prefix + "illion"})
		vocab = append(vocab, magnitude{powerOfTen(6*n + 3), prefix + "illiard"})
	}
	slices.SortFunc(vocab, func(a, b magnitude) int {
		return b.threshold.Cmp(a.threshold)
	})
	return vocab
}

// powerOfTen returns 10^exp.
func powerOfTen(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}

// greatestRelevant returns the largest named power of ten not exceeding x.
// The boolean is false when x < 100, i.e. no entry applies.
func greatestRelevant(vocab []magnitude, x *big.Int) (magnitude, bool) {
	for _, m := range vocab {
		if m.threshold.Cmp(x) <= 0 {
			return m, true
		}
	}
	return magnitude{}, false
}
