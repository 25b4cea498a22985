package get_floor_view

import (
	"context"
	"strconv"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
)

// UseCase use case для построения вида этажа (таблица и план)
type UseCase struct {
	store       SnapshotProvider
	floors      domain.FloorCatalog
	maxViewport float64
	recorder    Recorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// maxViewport предельная ширина и высота плана в пикселях, recorder может быть nil
func NewUseCase(store SnapshotProvider, floors domain.FloorCatalog, maxViewport int, recorder Recorder, logger Logger) *UseCase {
	return &UseCase{
		store:       store,
		floors:      floors,
		maxViewport: float64(maxViewport),
		recorder:    recorder,
		logger:      logger,
	}
}

// Execute строит кадр для выбора из запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxViewport); err != nil {
		uc.logger.Warn("GetFloorView: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущий снимок
	snapshot, err := uc.store.Snapshot()
	if err != nil {
		return nil, ErrDatasetNotLoaded
	}

	// 3. Применяем выбор поверх значений по умолчанию
	controller := view.NewController(snapshot, uc.floors)
	selection := controller.Update(view.Change{
		Day:    req.Day,
		Period: req.Period,
		Floor:  req.Floor,
	})

	// 4. Рассчитываем занятость и строим оба представления
	frame := controller.Render(view.Viewport{Width: req.Width, Height: req.Height})
	if uc.recorder != nil {
		uc.recorder.ObserveResolution(strconv.Itoa(selection.Floor))
	}

	return &Response{
		Frame:   frame,
		Options: controller.Options(),
	}, nil
}
