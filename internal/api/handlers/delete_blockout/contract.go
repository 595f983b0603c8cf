package delete_blockout

import "context"

type BlockoutService interface {
	Delete(ctx context.Context, agencyID, blockoutID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
