package get_agency_viewings

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/service/viewings/models"
)

type ViewingService interface {
	ListByAgency(ctx context.Context, agencyID int64) (*models.ViewingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
