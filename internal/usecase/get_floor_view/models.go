package get_floor_view

import "github.com/m04kA/SMC-RoomOccupancy/internal/view"

// Request модель запроса вида этажа
// Незаданные фильтры берутся из выбора по умолчанию
type Request struct {
	Day    *string
	Period *string
	Floor  *int
	Width  float64 // Ширина отображаемого плана, 0 - исходная
	Height float64 // Высота отображаемого плана, 0 - исходная
}

// Response кадр вида и доступные значения фильтров
type Response struct {
	Frame   view.Frame
	Options view.Options
}
