package gedcomx

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a genealogical date: the original text plus an optional formal
// (GEDCOM X date format) value.
type Date struct {
	Original string `json:"original,omitempty" xml:"original,omitempty"`
	Formal   string `json:"formal,omitempty" xml:"formal,omitempty"`
}

// Time makes a best-effort attempt at interpreting the date as a calendar
// date. Simple formal values ("+1850-03-12", "+1850") are tried first, then
// the original text. Approximate and range dates fail.
func (d *Date) Time() (time.Time, error) {
	if d == nil {
		return time.Time{}, fmt.Errorf("date is nil")
	}

	if formal := strings.TrimPrefix(d.Formal, "+"); formal != "" && !strings.ContainsAny(formal, "A/") {
		for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
			if t, err := time.Parse(layout, formal); err == nil {
				return t, nil
			}
		}
	}

	if d.Original == "" {
		return time.Time{}, fmt.Errorf("date has no parseable value")
	}

	t, err := dateparse.ParseAny(d.Original)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", d.Original, err)
	}
	return t, nil
}
