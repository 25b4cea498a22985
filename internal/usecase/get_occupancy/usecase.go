package get_occupancy

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
)

// UseCase use case для расчета занятости этажа
type UseCase struct {
	store    SnapshotProvider
	recorder Recorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// recorder может быть nil
func NewUseCase(store SnapshotProvider, recorder Recorder, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute возвращает занятые аудитории этажа в заданный день и урок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущий снимок
	snapshot, err := uc.store.Snapshot()
	if err != nil {
		if errors.Is(err, occupancy.ErrNotLoaded) {
			return nil, ErrDatasetNotLoaded
		}
		return nil, fmt.Errorf("%w: %v", ErrDatasetNotLoaded, err)
	}

	// 3. Рассчитываем занятость
	occ := snapshot.Resolve(req.Day, req.Period, req.Floor)
	if uc.recorder != nil {
		uc.recorder.ObserveResolution(strconv.Itoa(req.Floor))
	}

	// 4. Собираем ответ
	resp := &Response{
		Day:    req.Day,
		Period: req.Period,
		Floor:  req.Floor,
		Rooms:  make([]OccupiedRoom, 0, len(occ)),
	}

	for _, roomID := range occ.RoomIDs() {
		room, _ := snapshot.Room(roomID)
		entries := occ[roomID]

		classes := make([]Class, 0, len(entries))
		for _, entry := range entries {
			classes = append(classes, buildClass(snapshot, entry))
		}

		resp.Rooms = append(resp.Rooms, OccupiedRoom{
			Room:    room,
			Classes: classes,
			Label:   snapshot.Label(entries),
		})
	}

	return resp, nil
}

func buildClass(snapshot *occupancy.Snapshot, entry domain.ScheduleEntry) Class {
	class := Class{Entry: entry}
	if info, ok := snapshot.ClassInfo(entry.ScheduleID); ok {
		class.Info = &info
	}
	class.Label = class.Info.Label()
	return class
}
