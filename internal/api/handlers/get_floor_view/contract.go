package get_floor_view

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_floor_view"
)

type FloorViewUseCase interface {
	Execute(ctx context.Context, req *get_floor_view.Request) (*get_floor_view.Response, error)
}

// ImageLocator строит публичный URL изображения этажа
type ImageLocator interface {
	ImageURL(floor int) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
