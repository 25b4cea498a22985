package get_data

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

type DatasetService interface {
	Dataset(ctx context.Context) (domain.Dataset, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
