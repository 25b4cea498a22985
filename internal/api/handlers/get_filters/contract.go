package get_filters

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog/models"
)

type FiltersService interface {
	Filters(ctx context.Context) (*models.Filters, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
