package load_dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	cacheDataset "github.com/m04kA/SMC-RoomOccupancy/internal/infra/cache/dataset"
	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// UseCase use case для загрузки набора данных и перестроения индекса
type UseCase struct {
	sourceKind string
	source     Source
	cache      DatasetCache
	store      SnapshotStore
	recorder   Recorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
// cache и recorder могут быть nil
func NewUseCase(
	sourceKind string,
	source Source,
	cache DatasetCache,
	store SnapshotStore,
	recorder Recorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sourceKind: sourceKind,
		source:     source,
		cache:      cache,
		store:      store,
		recorder:   recorder,
		logger:     logger,
	}
}

// Execute загружает документ, нормализует строки и заменяет текущий снимок
// При ошибке источника текущий снимок не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	started := time.Now()
	uc.logger.Info("LoadDataset: source=%s, force=%t", uc.sourceKind, req.Force)

	// 1. Пробуем взять документ из кэша, принудительная загрузка сбрасывает его
	var doc *records.Document
	fromCache := false
	if uc.cache != nil && req.Force {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warn("LoadDataset: cache invalidation failed: %v", err)
		}
	}
	if uc.cache != nil && !req.Force {
		cached, err := uc.cache.Get(ctx)
		switch {
		case err == nil:
			doc, fromCache = cached, true
		case errors.Is(err, cacheDataset.ErrCacheMiss):
			uc.logger.Info("LoadDataset: cache miss")
		default:
			uc.logger.Warn("LoadDataset: cache read failed, falling back to source: %v", err)
		}
	}

	// 2. Загружаем документ из источника
	if doc == nil {
		loaded, err := uc.source.LoadDocument(ctx)
		if err != nil {
			uc.observe(statusFailure)
			uc.logger.Error("LoadDataset: source=%s failed: %v", uc.sourceKind, err)
			return nil, fmt.Errorf("%w: source=%s: %v", ErrSourceUnavailable, uc.sourceKind, err)
		}
		if loaded == nil {
			uc.observe(statusFailure)
			return nil, fmt.Errorf("%w: source=%s returned no document", ErrInternal, uc.sourceKind)
		}
		doc = loaded
	}

	// 3. Нормализуем строки
	ds, rejected := records.Normalize(doc)
	for _, rowErr := range rejected {
		uc.logger.Warn("LoadDataset: rejected %v", rowErr)
	}

	// 4. Сохраняем свежий документ в кэш (пустой набор не кэшируем)
	if ds.IsEmpty() {
		uc.logger.Warn("LoadDataset: source=%s produced an empty dataset", uc.sourceKind)
	}
	if uc.cache != nil && !fromCache && !ds.IsEmpty() {
		if err := uc.cache.Set(ctx, doc); err != nil {
			uc.logger.Warn("LoadDataset: cache write failed: %v", err)
		}
	}

	// 5. Перестраиваем индекс
	snapshot := uc.store.Rebuild(ds)
	stats := snapshot.Stats()

	uc.observe(statusSuccess)
	uc.recordTables(ds, rejected)

	uc.logger.Info("LoadDataset: built snapshot rooms=%d, classInfo=%d, schedules=%d, rejected=%d, cached=%t in %s",
		stats.Rooms, stats.ClassInfo, stats.Schedules, len(rejected), fromCache, time.Since(started))

	return &Response{
		Source:    uc.sourceKind,
		FromCache: fromCache,
		Rooms:     stats.Rooms,
		ClassInfo: stats.ClassInfo,
		Schedules: stats.Schedules,
		Rejected:  rejected,
		Days:      snapshot.Days(),
		Periods:   snapshot.Periods(),
		Floors:    snapshot.Floors(),
		BuiltAt:   stats.BuiltAt,
	}, nil
}

func (uc *UseCase) observe(status string) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.ObserveDatasetLoad(uc.sourceKind, status)
}

func (uc *UseCase) recordTables(ds domain.Dataset, rejected []records.RowError) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.SetDatasetRecords(domain.TableRoomInfo, len(ds.Rooms))
	uc.recorder.SetDatasetRecords(domain.TableClassInfo, len(ds.ClassInfo))
	uc.recorder.SetDatasetRecords(domain.TableClassSchedule, len(ds.Schedules))

	perTable := make(map[string]int)
	for _, rowErr := range rejected {
		perTable[rowErr.Table]++
	}
	for table, count := range perTable {
		uc.recorder.AddRejectedRows(table, count)
	}
}
