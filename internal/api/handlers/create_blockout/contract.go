package create_blockout

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts/models"
)

type BlockoutService interface {
	Create(ctx context.Context, agencyID int64, req *models.CreateBlockoutRequest) (*models.BlockoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
