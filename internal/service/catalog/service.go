package catalog

import (
	"context"
	"path"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog/models"
)

// Service сервис справочных данных: фильтры, аудитории этажа, исходные таблицы
type Service struct {
	store       SnapshotProvider
	floors      domain.FloorCatalog
	imagePrefix string
	logger      Logger
}

// NewService создает новый экземпляр сервиса
// imagePrefix - URL-префикс статических изображений этажей
func NewService(store SnapshotProvider, floors domain.FloorCatalog, imagePrefix string, logger Logger) *Service {
	return &Service{
		store:       store,
		floors:      floors,
		imagePrefix: imagePrefix,
		logger:      logger,
	}
}

// Filters возвращает дни, уроки и этажи текущего набора данных
func (s *Service) Filters(ctx context.Context) (*models.Filters, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, ErrDatasetNotLoaded
	}

	floorList := snapshot.Floors()
	floors := make([]models.Floor, 0, len(floorList))
	for _, f := range floorList {
		item := models.Floor{
			Floor:    f,
			Label:    s.floors.Label(f),
			ImageURL: s.ImageURL(f),
		}
		if cfg, ok := s.floors.Config(f); ok {
			item.Width, item.Height = cfg.Width, cfg.Height
		}
		floors = append(floors, item)
	}

	return &models.Filters{
		Days:    snapshot.Days(),
		Periods: snapshot.Periods(),
		Floors:  floors,
	}, nil
}

// RoomsOnFloor возвращает аудитории этажа в порядке загрузки
// Для неизвестного этажа возвращается пустой список
func (s *Service) RoomsOnFloor(ctx context.Context, floor int) ([]domain.Room, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, ErrDatasetNotLoaded
	}

	rooms := snapshot.RoomsOnFloor(floor)
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return rooms, nil
}

// Dataset возвращает нормализованные таблицы текущего снимка
func (s *Service) Dataset(ctx context.Context) (domain.Dataset, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return domain.Dataset{}, ErrDatasetNotLoaded
	}
	return snapshot.Dataset(), nil
}

// ImageURL returns the public URL of the floor image, empty if unconfigured
func (s *Service) ImageURL(floor int) string {
	image := s.floors.Image(floor)
	if image == "" {
		return ""
	}
	return path.Join("/", s.imagePrefix, image)
}
