package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWeek(ctx context.Context, agencyID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
