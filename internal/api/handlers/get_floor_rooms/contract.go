package get_floor_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

type RoomService interface {
	RoomsOnFloor(ctx context.Context, floor int) ([]domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
