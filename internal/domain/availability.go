package domain

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// AvailabilityRule weekly working window of an agency (0 = Monday)
type AvailabilityRule struct {
	ID        int64
	AgencyID  int64
	DayOfWeek int
	Enabled   bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DefaultAvailabilityRule rule used for days the agency has not configured yet
func DefaultAvailabilityRule(agencyID int64, day int) AvailabilityRule {
	return AvailabilityRule{
		AgencyID:  agencyID,
		DayOfWeek: day,
		Enabled:   true,
		StartTime: DefaultWorkdayStart,
		EndTime:   DefaultWorkdayEnd,
	}
}

// Blockout unavailable period of an agency on a specific date
// FullDay blockouts have no times, partial ones have both StartTime < EndTime
type Blockout struct {
	ID        int64
	AgencyID  int64
	Date      time.Time
	FullDay   bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
	CreatedAt time.Time
}

// CompleteWeek returns exactly seven rules ordered by day, filling unconfigured days with the default window
func CompleteWeek(agencyID int64, rules []AvailabilityRule) []AvailabilityRule {
	byDay := make(map[int]AvailabilityRule, len(rules))
	for _, r := range rules {
		byDay[r.DayOfWeek] = r
	}

	week := make([]AvailabilityRule, 0, DaysInWeek)
	for day := 0; day < DaysInWeek; day++ {
		if r, ok := byDay[day]; ok {
			week = append(week, r)
			continue
		}
		week = append(week, DefaultAvailabilityRule(agencyID, day))
	}
	return week
}
