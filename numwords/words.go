// Word tables for English number-to-words conversion.
package numwords

const (
	wordAnd      = "and"
	wordHundred  = "hundred"
	wordThousand = "thousand"
)

// Recognized negation words for Options.Negation.
const (
	NegationNegative = "negative"
	NegationMinus    = "minus"
)

// onesRoots are the cardinal roots everything else is built from.
var onesRoots = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// ordinalOverrides bypass the morphology engine entirely.
var ordinalOverrides = map[string]string{
	"one":   "first",
	"two":   "second",
	"three": "third",
}

// digitTable holds the cardinal and ordinal spellings for one lookup range.
type digitTable struct {
	cardinal [10]string
	ordinal  [10]string
}

func (t *digitTable) pick(mode Mode) *[10]string {
	if mode == Ordinal {
		return &t.ordinal
	}
	return &t.cardinal
}

// The three fixed lookup tables, built once before any rendering call.
var (
	ones  = buildOnes()
	teens = buildTeens()
	tens  = buildTens()
)

func buildOnes() digitTable {
	var t digitTable
	t.cardinal = onesRoots
	for i, root := range onesRoots {
		if w, ok := ordinalOverrides[root]; ok {
			t.ordinal[i] = w
			continue
		}
		t.ordinal[i] = applySuffix(root, suffixTh)
	}
	return t
}

// buildTeens fills the 10–19 table, indexed by the ones digit.
// Entries 10–13 are irregular; the rest derive from the ones roots.
func buildTeens() digitTable {
	var t digitTable
	irregular := map[int]string{0: "ten", 1: "eleven", 2: "twelve", 3: "thirteen"}
	for i := range 10 {
		if w, ok := irregular[i]; ok {
			t.cardinal[i] = w
		} else {
			t.cardinal[i] = applySuffix(onesRoots[i], suffixTeen)
		}
		t.ordinal[i] = applySuffix(t.cardinal[i], suffixTh)
	}
	return t
}

// buildTens fills the 20–90 table, indexed by the tens digit (2–9);
// indices 0 and 1 are unused. Entries 20–40 are irregular.
func buildTens() digitTable {
	var t digitTable
	irregular := map[int]string{2: "twenty", 3: "thirty", 4: "forty"}
	for i := 2; i < 10; i++ {
		if w, ok := irregular[i]; ok {
			t.cardinal[i] = w
		} else {
			t.cardinal[i] = applySuffix(onesRoots[i], suffixTy)
		}
		t.ordinal[i] = applySuffix(t.cardinal[i], suffixTh)
	}
	return t
}
