package hub_case

import (
	"time"

	"github.com/virtutask/virtutask-api/internal/entity"
	"github.com/virtutask/virtutask-api/internal/utils"
)

const (
	allowanceHigh   int64 = 3600
	allowanceMedium int64 = 1800
	allowanceLow    int64 = 900
)

// AllowanceFor bildet den Produktivitäts-Score auf das Tageskontingent in Sekunden ab.
func AllowanceFor(score float64) int64 {
	switch {
	case score >= 90:
		return allowanceHigh
	case score >= 75:
		return allowanceMedium
	default:
		return allowanceLow
	}
}

// Remaining kann negativ werden, wenn mehr gemeldet wurde als erlaubt.
func Remaining(allowance, sessionDuration int64) int64 {
	return allowance - sessionDuration
}

// resetIfStale startet einen neuen Tag, wenn der gespeicherte Tag nicht heute ist.
// Liefert true, wenn zurückgesetzt wurde.
func resetIfStale(e *entity.UserEngagement, now time.Time, loc *time.Location) bool {
	if utils.SameCalendarDay(e.LastSessionStart, now, loc) {
		return false
	}
	e.LastSessionStart = now
	e.SessionDuration = 0
	e.IsEnabled = true
	return true
}
