package floorplan

import "errors"

var (
	// ErrImageNotFound возвращается, когда файла плана этажа нет
	ErrImageNotFound = errors.New("floorplan: image not found")

	// ErrDecode возвращается, когда файл плана не удалось прочитать как изображение
	ErrDecode = errors.New("floorplan: failed to decode image")

	// ErrEncode возвращается при ошибке кодирования PNG
	ErrEncode = errors.New("floorplan: failed to encode image")

	// ErrCanvasTooLarge возвращается, когда размер холста вне допустимого бюджета пикселей
	ErrCanvasTooLarge = errors.New("floorplan: canvas size out of bounds")

	// ErrNoOverlay возвращается, когда для этажа нет геометрии плана
	ErrNoOverlay = errors.New("floorplan: floor has no overlay geometry")
)
