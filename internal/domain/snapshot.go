package domain

import "github.com/m04kA/SMC-ViewingService/internal/scheduling"

// ToAppointments converts viewings into engine appointments located at the property postcode
func ToAppointments(viewings []*Viewing) []scheduling.Appointment {
	out := make([]scheduling.Appointment, 0, len(viewings))
	for _, v := range viewings {
		out = append(out, scheduling.Appointment{
			ID:          v.ID,
			AgentID:     v.AgentID,
			Date:        v.RequestedDate,
			Time:        v.EffectiveTime(),
			LocationKey: v.PropertyPostcode,
			Status:      scheduling.AppointmentStatus(v.Status),
		})
	}
	return out
}

// ToWeeklyRules converts stored availability rules into the engine weekly template
func ToWeeklyRules(rules []AvailabilityRule) []scheduling.WeeklyRule {
	out := make([]scheduling.WeeklyRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, scheduling.WeeklyRule{
			DayOfWeek: r.DayOfWeek,
			Enabled:   r.Enabled,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return out
}

func ToExclusions(blockouts []Blockout) []scheduling.Exclusion {
	out := make([]scheduling.Exclusion, 0, len(blockouts))
	for _, b := range blockouts {
		out = append(out, scheduling.Exclusion{
			Date:      b.Date,
			FullDay:   b.FullDay,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return out
}
