// Package cycletime synthesizes cycle-time observations per product and
// bucket. It is a replaceable data source, not a forecasting model.
package cycletime

import (
	"errors"
	"fmt"
	"strings"

	"scm-mcp/internal/buckets"

	"github.com/samber/lo"
)

// ErrInvalidRange is returned when a sampling range cannot yield a positive value.
var ErrInvalidRange = errors.New("invalid cycle time range")

// Source is the random capability the synthesizer needs. *math/rand/v2.Rand
// satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Range is an inclusive integer sampling range in days.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Reference sampling profiles.
var (
	ReportingRange = Range{Min: 10, Max: 59}
	LeadTimeRange  = Range{Min: 5, Max: 14}
)

// Validate checks that every draw from r is a positive integer.
func (r Range) Validate() error {
	if r.Min < 1 {
		return fmt.Errorf("%w: min must be >= 1, got %d", ErrInvalidRange, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: max %d is below min %d", ErrInvalidRange, r.Max, r.Min)
	}
	return nil
}

// Observation is one synthetic cycle time for a (product, bucket) pair.
type Observation struct {
	ProductID string         `json:"product_id"`
	Bucket    buckets.Bucket `json:"bucket"`
	CycleTime int            `json:"cycle_time"`
}

// Synthesizer emits one observation per product and bucket.
type Synthesizer struct {
	rng           Range
	knownProducts []string
}

// NewSynthesizer creates a synthesizer drawing from r. knownProducts is used
// whenever a caller passes no product IDs.
func NewSynthesizer(r Range, knownProducts []string) (*Synthesizer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{
		rng:           r,
		knownProducts: normalizeProducts(knownProducts),
	}, nil
}

// Range returns the sampling range.
func (s *Synthesizer) Range() Range {
	return s.rng
}

// KnownProducts returns a copy of the fallback product list.
func (s *Synthesizer) KnownProducts() []string {
	out := make([]string, len(s.knownProducts))
	copy(out, s.knownProducts)
	return out
}

// Synthesize returns product-major observations: every bucket for the first
// product, then every bucket for the next. An empty bucket list yields an
// empty result.
func (s *Synthesizer) Synthesize(seq buckets.Sequence, productIDs []string, src Source) ([]Observation, error) {
	if src == nil {
		return nil, fmt.Errorf("random source is required")
	}

	products := normalizeProducts(productIDs)
	if len(products) == 0 {
		products = s.knownProducts
	}

	observations := make([]Observation, 0, len(products)*len(seq))
	if len(seq) == 0 {
		return observations, nil
	}

	width := s.rng.Max - s.rng.Min + 1
	for _, product := range products {
		for _, b := range seq {
			observations = append(observations, Observation{
				ProductID: product,
				Bucket:    b,
				CycleTime: s.rng.Min + src.IntN(width),
			})
		}
	}

	return observations, nil
}

// normalizeProducts trims IDs, drops blanks and removes duplicates while
// keeping first-seen order.
func normalizeProducts(ids []string) []string {
	trimmed := lo.Map(ids, func(id string, _ int) string {
		return strings.TrimSpace(id)
	})
	return lo.Uniq(lo.Compact(trimmed))
}
