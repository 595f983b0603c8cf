package scheduling

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// AppointmentStatus статус показа
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentDeclined  AppointmentStatus = "declined"
)

// SlotStatus классификация слота
type SlotStatus string

const (
	SlotOK       SlotStatus = "ok"
	SlotTight    SlotStatus = "tight"
	SlotConflict SlotStatus = "conflict"
)

// WeeklyRule рабочее окно агента на день недели (0 - понедельник)
type WeeklyRule struct {
	DayOfWeek int
	Enabled   bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Exclusion блокировка на дату: весь день или интервал [StartTime, EndTime)
type Exclusion struct {
	Date      time.Time
	FullDay   bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
}

// Appointment показ в расписании агента
// Time - подтвержденное время, если есть, иначе запрошенное
type Appointment struct {
	ID          int64
	AgentID     int64
	Date        time.Time
	Time        types.TimeString
	LocationKey string
	Status      AppointmentStatus
}

// Slot доступный слот
type Slot struct {
	Time          types.TimeString
	Status        SlotStatus
	TravelMinutes *int
}

// FeasibilityResult результат проверки одного кандидата
type FeasibilityResult struct {
	Feasible bool
	Reason   string
}

// Evaluation результат проверки с классификацией
type Evaluation struct {
	Status        SlotStatus
	Reason        string
	TravelMinutes *int
}

// GenerateRequest входные данные для расчета слотов на день
type GenerateRequest struct {
	AgentID         int64
	Date            time.Time
	LocationKey     string
	DurationMinutes int
	BufferMinutes   int
	Now             time.Time
	Rules           []WeeklyRule
	Exclusions      []Exclusion
	Appointments    []Appointment
}

// FeasibilityRequest входные данные для проверки одного времени
type FeasibilityRequest struct {
	AgentID     int64
	Date        time.Time
	Time        types.TimeString
	LocationKey string
	// ExcludeID показ, который не учитывается (сам проверяемый показ)
	ExcludeID    int64
	Appointments []Appointment
}
