package get_occupancy

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_occupancy"
)

type OccupancyUseCase interface {
	Execute(ctx context.Context, req *get_occupancy.Request) (*get_occupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
