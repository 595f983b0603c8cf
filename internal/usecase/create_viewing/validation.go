package create_viewing

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantName) == "" {
		return fmt.Errorf("%w: tenantName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.TenantName) > domain.MaxTenantNameLength {
		return fmt.Errorf("%w: tenantName must be at most %d characters", ErrInvalidInput, domain.MaxTenantNameLength)
	}

	if !strings.Contains(req.TenantEmail, "@") {
		return fmt.Errorf("%w: tenantEmail is invalid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantPhone) == "" {
		return fmt.Errorf("%w: tenantPhone is required", ErrInvalidInput)
	}

	if req.RequestedTime.IsZero() {
		return fmt.Errorf("%w: requestedTime is required", ErrInvalidInput)
	}
	if err := req.RequestedTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid requestedTime format: %v", ErrInvalidInput, err)
	}

	if req.Message != nil && utf8.RuneCountInString(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	if req.Occupants != nil && (*req.Occupants < 1 || *req.Occupants > domain.MaxOccupants) {
		return fmt.Errorf("%w: occupants must be between 1 and %d", ErrInvalidInput, domain.MaxOccupants)
	}

	if req.RentBudget != nil && *req.RentBudget < 0 {
		return fmt.Errorf("%w: rentBudget must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateRequestedTime запрещает прошедшие даты, а сегодня - время не позже now + leadMinutes
func validateRequestedTime(date time.Time, requested types.TimeString, now time.Time, leadMinutes int) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if dateOnly.Before(today) {
		return ErrDateInPast
	}
	if dateOnly.After(today) {
		return nil
	}

	requestedMinutes, err := requested.ToMinutes()
	if err != nil {
		return fmt.Errorf("%w: invalid requestedTime format: %v", ErrInvalidInput, err)
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if requestedMinutes <= nowMinutes+leadMinutes {
		return fmt.Errorf("%w: requested %s, earliest allowed is after %d minutes from now",
			ErrTooLateToBook, requested, leadMinutes)
	}

	return nil
}
