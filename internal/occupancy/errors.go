package occupancy

import "errors"

var (
	// ErrNotLoaded возвращается, пока данные расписания не загружены
	ErrNotLoaded = errors.New("occupancy: dataset not loaded")
)
