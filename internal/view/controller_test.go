package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
)

func testSnapshot() *occupancy.Snapshot {
	return occupancy.Build(domain.Dataset{
		Rooms: []domain.Room{
			{ID: 3, Number: "110", Floor: 1, X: 100, Y: 50, Width: 40, Height: 20},
			{ID: 1, Number: "105", Floor: 1, X: 10, Y: 20, Width: 30, Height: 40},
			{ID: 2, Number: "002", Floor: 0, X: 0, Y: 0, Width: 10, Height: 10},
		},
		ClassInfo: []domain.ClassInfo{
			{ScheduleID: 10, Teacher: "Smith", ClassName: "Math", Grade: "9"},
			{ScheduleID: 11, Teacher: "Lee", ClassName: "Art"},
		},
		Schedules: []domain.ScheduleEntry{
			{ScheduleID: 10, Day: "Day2", Period: "P3", RoomID: 1},
			{ScheduleID: 11, Day: "Day2", Period: "P3", RoomID: 1},
			{ScheduleID: 12, Day: "Day1", Period: "P1", RoomID: 2},
		},
	})
}

func testFloors() domain.FloorCatalog {
	return domain.NewFloorCatalog([]domain.FloorConfig{
		{Floor: 1, Label: "First", Image: "floor-1.png", Width: 200, Height: 100},
		{Floor: 0, Label: "Ground", Image: "floor-0.png"},
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(testSnapshot(), testFloors())

	assert.Equal(t, Selection{Day: "Day1", Period: "P1", Floor: 0}, c.Selection())
}

func TestNewController_EmptySnapshot(t *testing.T) {
	c := NewController(occupancy.Build(domain.Dataset{}), testFloors())

	assert.Equal(t, Selection{}, c.Selection())
	frame := c.Render(Viewport{})
	assert.Empty(t, frame.Table)
}

func TestController_RenderTable(t *testing.T) {
	c := NewController(testSnapshot(), testFloors())
	c.Update(Change{Day: ptr("Day2"), Period: ptr("P3"), Floor: ptr(1)})

	frame := c.Render(Viewport{})

	assert.Equal(t, "First", frame.FloorLabel)
	assert.Equal(t, "floor-1.png", frame.Image)
	require.Len(t, frame.Table, 2)
	assert.Equal(t, TableRow{
		RoomID:     1,
		RoomNumber: "105",
		Status:     domain.StatusUsed,
		Detail:     "Math - Smith (Grade 9); Art - Lee",
	}, frame.Table[0])
	assert.True(t, frame.Table[0].IsUsed())
	assert.Equal(t, TableRow{
		RoomID:     3,
		RoomNumber: "110",
		Status:     domain.StatusAvailable,
		Detail:     domain.StatusAvailable,
	}, frame.Table[1])
}

func TestController_RenderOverlay(t *testing.T) {
	c := NewController(testSnapshot(), testFloors())
	c.Update(Change{Day: ptr("Day2"), Period: ptr("P3"), Floor: ptr(1)})

	frame := c.Render(Viewport{Width: 100, Height: 50})

	require.NotNil(t, frame.Overlay)
	assert.InDelta(t, 0.5, frame.Overlay.ScaleX, 1e-9)
	assert.InDelta(t, 0.5, frame.Overlay.ScaleY, 1e-9)
	require.Len(t, frame.Overlay.Rooms, 2)

	first := frame.Overlay.Rooms[0]
	assert.Equal(t, int64(3), first.RoomID, "overlay keeps load order")
	assert.False(t, first.Used)
	assert.InDelta(t, 50, first.Left, 1e-9)
	assert.InDelta(t, 25, first.Top, 1e-9)
	assert.InDelta(t, 20, first.Width, 1e-9)
	assert.InDelta(t, 10, first.Height, 1e-9)

	second := frame.Overlay.Rooms[1]
	assert.True(t, second.Used)
	require.Len(t, second.Blocks, 2)
	assert.Equal(t, "Math", second.Blocks[0].ClassName)
	assert.Equal(t, "Grade 9", second.Blocks[0].Grade)
	assert.Equal(t, "Art", second.Blocks[1].ClassName)
	assert.Equal(t, "", second.Blocks[1].Grade)
}

func TestController_OverlayNativeScale(t *testing.T) {
	c := NewController(testSnapshot(), testFloors())
	c.Update(Change{Floor: ptr(1)})

	frame := c.Render(Viewport{})

	require.NotNil(t, frame.Overlay)
	assert.Equal(t, 1.0, frame.Overlay.ScaleX)
	assert.Equal(t, 200.0, frame.Overlay.Width)
}

func TestController_OverlayMissingGeometry(t *testing.T) {
	c := NewController(testSnapshot(), testFloors())

	frame := c.Render(Viewport{Width: 100, Height: 100})
	assert.Nil(t, frame.Overlay, "floor 0 has no native size")

	c.Update(Change{Floor: ptr(7)})
	frame = c.Render(Viewport{Width: 100, Height: 100})
	assert.Nil(t, frame.Overlay)
	assert.Equal(t, "Floor 7", frame.FloorLabel)
	assert.Equal(t, "", frame.Image)
	assert.Empty(t, frame.Table)
}

func TestController_Options(t *testing.T) {
	c := NewController(testSnapshot(), testFloors())

	options := c.Options()

	assert.Equal(t, []string{"Day1", "Day2"}, options.Days)
	assert.Equal(t, []string{"P1", "P3"}, options.Periods)
	assert.Equal(t, []FloorOption{
		{Floor: 0, Label: "Ground", Image: "floor-0.png"},
		{Floor: 1, Label: "First", Image: "floor-1.png"},
	}, options.Floors)
}

func TestController_RenderTable_LocaleOrder(t *testing.T) {
	snapshot := occupancy.Build(domain.Dataset{
		Rooms: []domain.Room{
			{ID: 1, Number: "Gym", Floor: 5},
			{ID: 2, Number: "b12", Floor: 5},
			{ID: 3, Number: "Écrin", Floor: 5},
			{ID: 4, Number: "a11", Floor: 5},
			{ID: 5, Number: "A10", Floor: 5},
		},
	})

	frame := NewController(snapshot, domain.FloorCatalog{}).Render(Viewport{})

	numbers := make([]string, 0, len(frame.Table))
	for _, row := range frame.Table {
		numbers = append(numbers, row.RoomNumber)
	}
	assert.Equal(t, []string{"A10", "a11", "b12", "Écrin", "Gym"}, numbers)
}
