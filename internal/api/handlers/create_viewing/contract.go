package create_viewing

import (
	"context"

	createViewing "github.com/m04kA/SMC-ViewingService/internal/usecase/create_viewing"
)

type CreateViewingUseCase interface {
	Execute(ctx context.Context, req *createViewing.Request) (*createViewing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
