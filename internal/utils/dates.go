package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseFlexibleDate akzeptiert "2006-01-02" oder RFC 3339.
func ParseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// SameCalendarDay vergleicht Jahr, Monat und Tag in loc, kein rollierendes 24h-Fenster.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
