package get_filters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog"
	"github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog/models"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

type fakeService struct {
	filters *models.Filters
	err     error
}

func (s *fakeService) Filters(context.Context) (*models.Filters, error) {
	return s.filters, s.err
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{filters: &models.Filters{
		Days:    []string{"Mon"},
		Periods: []string{"1", "2"},
		Floors:  []models.Floor{{Floor: 4, Label: "Floor 4", ImageURL: "/floors/floor-3.png", Width: 544, Height: 755}},
	}}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/filters", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"days": ["Mon"],
		"periods": ["1", "2"],
		"floors": [{"floor":4,"label":"Floor 4","imageUrl":"/floors/floor-3.png","width":544,"height":755}]
	}`, rec.Body.String())
}

func TestHandler_Handle_NotLoaded(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: catalog.ErrDatasetNotLoaded}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/filters", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
