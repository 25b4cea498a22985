package view

import (
	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
)

// Overlay аудитории, пересчитанные в координаты отображаемого плана
type Overlay struct {
	ScaleX float64
	ScaleY float64
	Width  float64
	Height float64
	Rooms  []OverlayRoom
}

// OverlayRoom прямоугольник аудитории на плане
type OverlayRoom struct {
	RoomID int64
	Number string
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Used   bool
	Blocks []occupancy.ClassBlock
}

// overlay возвращает nil, если для этажа нет конфигурации с исходными размерами
func (c *Controller) overlay(rooms []domain.Room, occ occupancy.Occupancy, viewport Viewport) *Overlay {
	cfg, ok := c.floors.Config(c.selection.Floor)
	if !ok || !cfg.HasGeometry() {
		return nil
	}

	width, height := viewport.Width, viewport.Height
	if width <= 0 || height <= 0 {
		width, height = float64(cfg.Width), float64(cfg.Height)
	}
	scaleX := width / float64(cfg.Width)
	scaleY := height / float64(cfg.Height)

	result := &Overlay{
		ScaleX: scaleX,
		ScaleY: scaleY,
		Width:  width,
		Height: height,
		Rooms:  make([]OverlayRoom, 0, len(rooms)),
	}

	for _, room := range rooms {
		item := OverlayRoom{
			RoomID: room.ID,
			Number: room.Number,
			Left:   float64(room.X) * scaleX,
			Top:    float64(room.Y) * scaleY,
			Width:  float64(room.Width) * scaleX,
			Height: float64(room.Height) * scaleY,
		}
		if entries := occ[room.ID]; len(entries) > 0 {
			item.Used = true
			item.Blocks = c.snapshot.Blocks(room, entries)
		}
		result.Rooms = append(result.Rooms, item)
	}

	return result
}
