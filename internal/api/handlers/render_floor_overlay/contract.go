package render_floor_overlay

import (
	"context"
	"io"

	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_floor_view"
	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
)

type FloorViewUseCase interface {
	Execute(ctx context.Context, req *get_floor_view.Request) (*get_floor_view.Response, error)
}

// OverlayRenderer рисует план этажа с подсветкой аудиторий
type OverlayRenderer interface {
	Render(w io.Writer, imageName string, overlay *view.Overlay) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
