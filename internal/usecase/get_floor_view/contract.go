package get_floor_view

import "github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"

// SnapshotProvider источник текущего снимка
type SnapshotProvider interface {
	Snapshot() (*occupancy.Snapshot, error)
}

// Recorder интерфейс метрик расчета занятости
type Recorder interface {
	ObserveResolution(floor string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
