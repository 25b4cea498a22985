package reload_dataset

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/load_dataset"
)

type LoadUseCase interface {
	Execute(ctx context.Context, req *load_dataset.Request) (*load_dataset.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
