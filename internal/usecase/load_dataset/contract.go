package load_dataset

import (
	"context"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// Source источник исходного документа набора данных
type Source interface {
	LoadDocument(ctx context.Context) (*records.Document, error)
}

// SourceFunc позволяет использовать функцию как Source
type SourceFunc func(ctx context.Context) (*records.Document, error)

// LoadDocument вызывает f(ctx)
func (f SourceFunc) LoadDocument(ctx context.Context) (*records.Document, error) {
	return f(ctx)
}

// DatasetCache интерфейс кэша исходного документа
type DatasetCache interface {
	Get(ctx context.Context) (*records.Document, error)
	Set(ctx context.Context, doc *records.Document) error
	Invalidate(ctx context.Context) error
}

// SnapshotStore хранилище текущего снимка
type SnapshotStore interface {
	Rebuild(ds domain.Dataset) *occupancy.Snapshot
}

// Recorder интерфейс метрик загрузки
type Recorder interface {
	ObserveDatasetLoad(source, status string)
	SetDatasetRecords(table string, count int)
	AddRejectedRows(table string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
