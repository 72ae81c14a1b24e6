package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches: "2015Q3", "2015-Q3", "2015.3"
var periodRegex = regexp.MustCompile(`^(\d{4})[-.]?[qQ](\d)$`)

// Matches the raw wire form: "20153"
var periodCodeRegex = regexp.MustCompile(`^(\d{4})(\d)$`)

// Period identifies one quarter of the transaction-price series.
type Period struct {
	Year    int
	Quarter int
}

// ParsePeriod parses human-friendly quarter expressions.
// Supports: "2015Q3", "2015-Q3", "2015.3" and the raw code "20153".
func ParsePeriod(s string) (Period, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Period{}, fmt.Errorf("empty period expression")
	}

	matches := periodRegex.FindStringSubmatch(raw)
	if matches == nil {
		matches = periodCodeRegex.FindStringSubmatch(raw)
	}
	if len(matches) != 3 {
		return Period{}, fmt.Errorf("invalid period %q (want e.g. 2015Q3)", raw)
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q", raw)
	}
	quarter, err := strconv.Atoi(matches[2])
	if err != nil || quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("invalid period %q: quarter must be 1-4", raw)
	}

	return Period{Year: year, Quarter: quarter}, nil
}

// Code returns the wire form used by the points endpoints, e.g. "20153".
func (p Period) Code() string {
	return fmt.Sprintf("%04d%d", p.Year, p.Quarter)
}

// String renders the display form, e.g. "2015Q3".
func (p Period) String() string {
	return fmt.Sprintf("%04dQ%d", p.Year, p.Quarter)
}

// Before reports whether p precedes other in the series.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Quarter < other.Quarter
}

// Next returns the following quarter.
func (p Period) Next() Period {
	if p.Quarter >= 4 {
		return Period{Year: p.Year + 1, Quarter: 1}
	}
	return Period{Year: p.Year, Quarter: p.Quarter + 1}
}

// ParsePeriodRange parses a from/to pair, rejecting an inverted range.
// Either side may use any form ParsePeriod accepts.
func ParsePeriodRange(from, to string) (Period, Period, error) {
	start, err := ParsePeriod(from)
	if err != nil {
		return Period{}, Period{}, err
	}
	end, err := ParsePeriod(to)
	if err != nil {
		return Period{}, Period{}, err
	}
	if end.Before(start) {
		return Period{}, Period{}, fmt.Errorf("period range %s to %s is inverted", start, end)
	}
	return start, end, nil
}
