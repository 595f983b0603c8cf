package get_viewing_feasibility

import (
	"context"

	checkFeasibility "github.com/m04kA/SMC-ViewingService/internal/usecase/check_viewing_feasibility"
)

type CheckFeasibilityUseCase interface {
	Execute(ctx context.Context, req *checkFeasibility.Request) (*checkFeasibility.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
