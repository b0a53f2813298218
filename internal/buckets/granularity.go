package buckets

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGranularity is returned for any bucket type outside the closed set.
var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity selects the width of the calendar windows and how many are cut.
type Granularity string

const (
	Weekly    Granularity = "WEEKLY"
	Monthly   Granularity = "MONTHLY"
	Quarterly Granularity = "QUARTERLY"
	Yearly    Granularity = "YEARLY"
)

// All lists the supported granularities, finest first.
var All = []Granularity{Weekly, Monthly, Quarterly, Yearly}

// ParseGranularity accepts the canonical names case-insensitively plus the
// short unit aliases (week, month, quarter, year).
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WEEKLY", "WEEK":
		return Weekly, nil
	case "MONTHLY", "MONTH":
		return Monthly, nil
	case "QUARTERLY", "QUARTER":
		return Quarterly, nil
	case "YEARLY", "YEAR":
		return Yearly, nil
	default:
		return "", fmt.Errorf("%w: %q (expected one of WEEKLY, MONTHLY, QUARTERLY, YEARLY)", ErrInvalidGranularity, s)
	}
}

// Count returns the number of buckets generated for g.
func (g Granularity) Count() int {
	switch g {
	case Weekly:
		return 10
	case Monthly:
		return 6
	case Quarterly:
		return 4
	case Yearly:
		return 3
	default:
		return 0
	}
}

// Valid reports whether g is one of the four supported values.
func (g Granularity) Valid() bool {
	return g.Count() > 0
}

func (g Granularity) String() string {
	return string(g)
}
