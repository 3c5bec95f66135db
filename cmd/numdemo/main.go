// numdemo prints random integers alongside their written-English form.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jahooker/int2en/numwords"
)

func main() {
	var (
		count   = flag.Int("n", 10, "how many samples to print")
		stddev  = flag.Float64("stddev", 1e3, "standard deviation of the sampled magnitudes")
		scale   = flag.String("scale", "short", "naming convention: short or long")
		ordinal = flag.Bool("ordinal", false, "print ordinal forms")
		seed    = flag.Uint64("seed", 0, "PRNG seed; 0 picks one at random")
	)
	flag.Parse()

	opts := numwords.DefaultOptions()
	switch *scale {
	case "short":
		opts.Scale = numwords.ShortScale
	case "long":
		opts.Scale = numwords.LongScale
	default:
		fmt.Fprintf(os.Stderr, "unknown scale %q (want short or long)\n", *scale)
		os.Exit(1)
	}
	if *ordinal {
		opts.Mode = numwords.Ordinal
	}

	conv, err := numwords.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	if *seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	p := message.NewPrinter(language.English)
	for range *count {
		x := int64(math.Abs(rng.NormFloat64() * *stddev))
		p.Printf("%d: %s\n\n", x, conv.ConvertInt(x))
	}
}
