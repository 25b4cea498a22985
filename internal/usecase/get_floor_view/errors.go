package get_floor_view

import "errors"

var (
	// ErrDatasetNotLoaded возвращается, пока набор данных не загружен
	ErrDatasetNotLoaded = errors.New("get_floor_view: dataset not loaded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_floor_view: invalid input data")
)
