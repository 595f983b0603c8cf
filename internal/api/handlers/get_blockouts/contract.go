package get_blockouts

import (
	"context"

	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts/models"
)

type BlockoutService interface {
	List(ctx context.Context, agencyID int64) (*models.BlockoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
