package get_floor_view

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/internal/config"
	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_floor_view"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

type fakeImages struct{}

func (fakeImages) ImageURL(floor int) string {
	if floor != 1 {
		return ""
	}
	return fmt.Sprintf("/floors/floor-%d.png", floor)
}

func newHandler(store *occupancy.Store) *Handler {
	floors := domain.NewFloorCatalog([]domain.FloorConfig{
		{Floor: 1, Label: "First", Image: "floor-1.png", Width: 200, Height: 100},
	})
	uc := get_floor_view.NewUseCase(store, floors, config.DefaultMaxViewport, nil, logger.NewNop())
	return NewHandler(uc, fakeImages{}, logger.NewNop())
}

func loadedStore() *occupancy.Store {
	store := occupancy.NewStore()
	store.Rebuild(domain.Dataset{
		Rooms: []domain.Room{
			{ID: 1, Number: "105", Floor: 1, X: 10, Y: 20, Width: 30, Height: 40},
			{ID: 2, Number: "101", Floor: 1, X: 60, Y: 20, Width: 30, Height: 40},
		},
		ClassInfo: []domain.ClassInfo{{ScheduleID: 10, Teacher: "Smith", ClassName: "Math", Grade: "9"}},
		Schedules: []domain.ScheduleEntry{{ScheduleID: 10, Day: "Mon", Period: "1", RoomID: 1}},
	})
	return store
}

func TestHandler_Handle(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(loadedStore()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/view?day=Mon&period=1&floor=1&width=100&height=50", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, SelectionItem{Day: "Mon", Period: "1", Floor: 1}, resp.Selection)
	assert.Equal(t, "First", resp.FloorLabel)
	assert.Equal(t, "/floors/floor-1.png", resp.ImageURL)

	require.Len(t, resp.Table, 2)
	assert.Equal(t, "101", resp.Table[0].RoomNumber)
	assert.Equal(t, "Available", resp.Table[0].Detail)
	assert.Equal(t, "Used", resp.Table[1].Status)

	require.NotNil(t, resp.Overlay)
	assert.Equal(t, 0.5, resp.Overlay.ScaleX)
	require.Len(t, resp.Overlay.Rooms, 2)
	assert.True(t, resp.Overlay.Rooms[0].Used)
	assert.Equal(t, []BlockItem{{RoomNumber: "105", ClassName: "Math", Teacher: "Smith", Grade: "Grade 9"}}, resp.Overlay.Rooms[0].Blocks)
	assert.Nil(t, resp.Overlay.Rooms[1].Blocks)

	assert.Equal(t, []string{"Mon"}, resp.Options.Days)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		store  *occupancy.Store
		query  string
		status int
	}{
		{name: "bad floor", store: loadedStore(), query: "floor=abc", status: http.StatusBadRequest},
		{name: "bad width", store: loadedStore(), query: "width=wide", status: http.StatusBadRequest},
		{name: "oversized viewport", store: loadedStore(), query: "width=1e10&height=1e10", status: http.StatusBadRequest},
		{name: "negative height", store: loadedStore(), query: "height=-5", status: http.StatusBadRequest},
		{name: "empty day", store: loadedStore(), query: "day=", status: http.StatusBadRequest},
		{name: "not loaded", store: occupancy.NewStore(), query: "", status: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler(tc.store).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/view?"+tc.query, nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestParseQuery(t *testing.T) {
	req, err := ParseQuery(url.Values{"floor": {"4"}, "width": {"640.5"}})
	require.NoError(t, err)
	assert.Nil(t, req.Day)
	assert.Nil(t, req.Period)
	require.NotNil(t, req.Floor)
	assert.Equal(t, 4, *req.Floor)
	assert.Equal(t, 640.5, req.Width)
	assert.Equal(t, 0.0, req.Height)
}
