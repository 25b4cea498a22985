package get_occupancy

import "errors"

var (
	// ErrDatasetNotLoaded возвращается, пока набор данных не загружен
	ErrDatasetNotLoaded = errors.New("get_occupancy: dataset not loaded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_occupancy: invalid input data")
)
