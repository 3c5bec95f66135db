// Suffix morphology for English number words.
package numwords

import "strings"

// suffixKind selects which suffix family applySuffix attaches.
type suffixKind int

const (
	suffixTeen suffixKind = iota // 13–19 forms (fifteen, eighteen)
	suffixTy                     // tens multiples (fifty, eighty)
	suffixTh                     // ordinals (fifth, ninth, sixtieth)
)

// rewrite replaces one irregular root ending with its combined form.
type rewrite struct {
	ending   string
	combined string
}

// Irregular-ending rules per suffix family, tried in order; the first match
// wins. Roots that match none take the plain concatenated suffix.
var (
	teenRules = []rewrite{
		{"ve", "fteen"},   // five -> fifteen
		{"ght", "ghteen"}, // eight -> eighteen
	}
	tyRules = []rewrite{
		{"ve", "fty"},   // five -> fifty
		{"ght", "ghty"}, // eight -> eighty
	}
	thRules = []rewrite{
		{"ve", "fth"},   // five -> fifth, twelve -> twelfth
		{"ne", "nth"},   // nine -> ninth
		{"ght", "ghth"}, // eight -> eighth
		{"y", "ieth"},   // sixty -> sixtieth
	}
)

var suffixFamilies = map[suffixKind]struct {
	rules []rewrite
	plain string
}{
	suffixTeen: {teenRules, "teen"},
	suffixTy:   {tyRules, "ty"},
	suffixTh:   {thRules, "th"},
}

// applySuffix attaches a teen, ty or th suffix to root. Pure and total over
// the number-word roots; irregular endings rewrite, everything else
// concatenates.
func applySuffix(root string, kind suffixKind) string {
	family := suffixFamilies[kind]
	for _, r := range family.rules {
		if strings.HasSuffix(root, r.ending) {
			return root[:len(root)-len(r.ending)] + r.combined
		}
	}
	return root + family.plain
}
