package update_viewing_status

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/service/viewings/models"
)

type ViewingService interface {
	UpdateStatus(ctx context.Context, viewingID int64, req *models.UpdateStatusRequest) (*models.ViewingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
