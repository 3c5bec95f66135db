// Package app orchestrates conversions behind the HTTP surface.
package app

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jahooker/int2en/internal/metrics"
	"github.com/jahooker/int2en/numwords"
)

// maxDigits bounds accepted inputs. Rendering cost grows with the digit
// count, so unbounded input would be a trivial resource sink.
const maxDigits = 120

var (
	ErrNotANumber    = errors.New("n must be a base-10 integer")
	ErrNumberTooLong = fmt.Errorf("n must be at most %d digits", maxDigits)
)

// ConvertRequest is the application-level input (no HTTP types).
type ConvertRequest struct {
	Number   string // decimal digits, optional leading sign
	Scale    numwords.Scale
	Mode     numwords.Mode
	SayAnd   bool
	Linker   string
	Negation string
}

// ConvertResponse is the application-level output.
type ConvertResponse struct {
	Number string
	Words  string
	Scale  numwords.Scale
	Mode   numwords.Mode
	Cached bool
}

// WordsService converts numbers to words with an expiring LRU cache in
// front of the renderer.
type WordsService struct {
	cache *expirable.LRU[string, string]
}

// NewWordsService builds a service with the given cache capacity and TTL.
// A zero size disables caching.
func NewWordsService(cacheSize int, cacheTTL time.Duration) *WordsService {
	var cache *expirable.LRU[string, string]
	if cacheSize > 0 {
		cache = expirable.NewLRU[string, string](cacheSize, nil, cacheTTL)
	}
	return &WordsService{cache: cache}
}

// Convert validates req, renders it and records metrics. Repeat requests
// within the cache TTL are served from memory.
func (s *WordsService) Convert(req ConvertRequest) (ConvertResponse, error) {
	if len(req.Number) > maxDigits+1 { // +1 for a sign
		return ConvertResponse{}, ErrNumberTooLong
	}
	n, ok := new(big.Int).SetString(req.Number, 10)
	if !ok {
		return ConvertResponse{}, fmt.Errorf("%w: %q", ErrNotANumber, req.Number)
	}

	resp := ConvertResponse{
		Number: n.String(),
		Scale:  req.Scale,
		Mode:   req.Mode,
	}

	key := cacheKey(req)
	if s.cache != nil {
		if words, hit := s.cache.Get(key); hit {
			metrics.CacheHits.Inc()
			resp.Words = words
			resp.Cached = true
			return resp, nil
		}
		metrics.CacheMisses.Inc()
	}

	conv, err := numwords.New(numwords.Options{
		Scale:          req.Scale,
		Mode:           req.Mode,
		TwoDigitLinker: req.Linker,
		GroupSeparator: ",",
		SayAnd:         req.SayAnd,
		Negation:       req.Negation,
	})
	if err != nil {
		return ConvertResponse{}, err
	}

	resp.Words = conv.Convert(n)
	if s.cache != nil {
		s.cache.Add(key, resp.Words)
	}
	metrics.ConversionsTotal.WithLabelValues(req.Scale.String(), req.Mode.String()).Inc()
	return resp, nil
}

func cacheKey(req ConvertRequest) string {
	return req.Number + "|" + req.Scale.String() + "|" + req.Mode.String() +
		"|" + strconv.FormatBool(req.SayAnd) + "|" + req.Linker + "|" + req.Negation
}
