package models

import (
	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// Request модели

// RuleRequest правило на один день недели (0 - понедельник)
type RuleRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateAvailabilityRequest запрос на замену недельного расписания
type UpdateAvailabilityRequest struct {
	Availability []RuleRequest `json:"availability"`
}

// ToDomainRules конвертирует запрос в domain модели без валидации
func (r *UpdateAvailabilityRequest) ToDomainRules(agencyID int64) []domain.AvailabilityRule {
	rules := make([]domain.AvailabilityRule, 0, len(r.Availability))
	for _, rule := range r.Availability {
		rules = append(rules, domain.AvailabilityRule{
			AgencyID:  agencyID,
			DayOfWeek: rule.DayOfWeek,
			Enabled:   rule.Enabled,
			StartTime: types.TimeString(rule.StartTime),
			EndTime:   types.TimeString(rule.EndTime),
		})
	}
	return rules
}

// Response модели

// RuleResponse правило расписания
type RuleResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResponse недельное расписание агентства, всегда семь дней
type AvailabilityResponse struct {
	AgencyID     int64          `json:"agencyId"`
	Availability []RuleResponse `json:"availability"`
}

// FromDomainRules конвертирует domain модели в DTO
func FromDomainRules(agencyID int64, rules []domain.AvailabilityRule) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		AgencyID:     agencyID,
		Availability: make([]RuleResponse, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Availability = append(resp.Availability, RuleResponse{
			DayOfWeek: rule.DayOfWeek,
			Enabled:   rule.Enabled,
			StartTime: rule.StartTime.String(),
			EndTime:   rule.EndTime.String(),
		})
	}
	return resp
}
