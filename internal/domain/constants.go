package domain

import "github.com/m04kA/SMC-ViewingService/pkg/types"

// Default availability for days without a configured rule
const (
	DefaultWorkdayStart types.TimeString = "09:00"
	DefaultWorkdayEnd   types.TimeString = "18:00"
	DaysInWeek                           = 7
)

// Business validation constants
const (
	MaxTenantNameLength = 200
	MaxMessageLength    = 1000
	MaxOccupants        = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
