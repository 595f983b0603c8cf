package availability

import (
	"fmt"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
)

// validateRules проверяет день недели, формат времени, дубликаты и start < end для включенных дней
func validateRules(rules []domain.AvailabilityRule) error {
	seen := make(map[int]bool, len(rules))

	for i, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek >= domain.DaysInWeek {
			return fmt.Errorf("%w: invalid dayOfWeek: %d. Must be 0-6", ErrInvalidInput, rule.DayOfWeek)
		}
		if seen[rule.DayOfWeek] {
			return fmt.Errorf("%w: availability[%d].dayOfWeek=%d duplicated", ErrInvalidInput, i, rule.DayOfWeek)
		}
		seen[rule.DayOfWeek] = true

		if err := rule.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %s. Must be HH:MM", ErrInvalidInput, rule.StartTime)
		}
		if err := rule.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %s. Must be HH:MM", ErrInvalidInput, rule.EndTime)
		}

		if rule.Enabled && !rule.StartTime.IsBefore(rule.EndTime) {
			return fmt.Errorf("%w: availability[%d] startTime %s must be before endTime %s",
				ErrInvalidInput, i, rule.StartTime, rule.EndTime)
		}
	}

	return nil
}
