package catalog

import "errors"

var (
	// ErrDatasetNotLoaded возвращается, пока набор данных не загружен
	ErrDatasetNotLoaded = errors.New("catalog: dataset not loaded")
)
