package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
)

// Selection текущий выбор фильтров
type Selection struct {
	Day    string
	Period string
	Floor  int
}

// Change изменение выбора, nil-поля не меняются
type Change struct {
	Day    *string
	Period *string
	Floor  *int
}

// Viewport размер отображаемого плана этажа
// Нулевой размер означает исходный размер изображения
type Viewport struct {
	Width  float64
	Height float64
}

// Controller связывает выбор фильтров с расчетом занятости
type Controller struct {
	snapshot  *occupancy.Snapshot
	floors    domain.FloorCatalog
	selection Selection
}

// NewController создает контроллер над завершенным снимком
// и выставляет первые доступные значения: день, урок и нижний этаж
func NewController(snapshot *occupancy.Snapshot, floors domain.FloorCatalog) *Controller {
	c := &Controller{
		snapshot: snapshot,
		floors:   floors,
	}

	if days := snapshot.Days(); len(days) > 0 {
		c.selection.Day = days[0]
	}
	if periods := snapshot.Periods(); len(periods) > 0 {
		c.selection.Period = periods[0]
	}
	if floorList := snapshot.Floors(); len(floorList) > 0 {
		c.selection.Floor = floorList[0]
	}

	return c
}

// Selection returns the current selection
func (c *Controller) Selection() Selection {
	return c.selection
}

// Update применяет изменение выбора
func (c *Controller) Update(change Change) Selection {
	if change.Day != nil {
		c.selection.Day = *change.Day
	}
	if change.Period != nil {
		c.selection.Period = *change.Period
	}
	if change.Floor != nil {
		c.selection.Floor = *change.Floor
	}
	return c.selection
}

// Options возможные значения фильтров
type Options struct {
	Days    []string
	Periods []string
	Floors  []FloorOption
}

// FloorOption этаж в списке выбора
type FloorOption struct {
	Floor int
	Label string
	Image string
}

// Options returns filter domains derived from the snapshot
func (c *Controller) Options() Options {
	floorList := c.snapshot.Floors()
	floors := make([]FloorOption, 0, len(floorList))
	for _, f := range floorList {
		floors = append(floors, FloorOption{
			Floor: f,
			Label: c.floors.Label(f),
			Image: c.floors.Image(f),
		})
	}

	return Options{
		Days:    c.snapshot.Days(),
		Periods: c.snapshot.Periods(),
		Floors:  floors,
	}
}

// Frame результат отрисовки для текущего выбора
type Frame struct {
	Selection  Selection
	FloorLabel string
	Image      string
	Table      []TableRow
	Overlay    *Overlay
}

// TableRow строка табличного вида
type TableRow struct {
	RoomID     int64
	RoomNumber string
	Status     string
	Detail     string
}

// IsUsed returns true if the room is occupied
func (r *TableRow) IsUsed() bool {
	return r.Status == domain.StatusUsed
}

// Render рассчитывает занятость для текущего выбора и строит оба представления
func (c *Controller) Render(viewport Viewport) Frame {
	sel := c.selection
	rooms := c.snapshot.RoomsOnFloor(sel.Floor)
	occ := c.snapshot.Resolve(sel.Day, sel.Period, sel.Floor)

	return Frame{
		Selection:  sel,
		FloorLabel: c.floors.Label(sel.Floor),
		Image:      c.floors.Image(sel.Floor),
		Table:      c.table(rooms, occ),
		Overlay:    c.overlay(rooms, occ, viewport),
	}
}

func (c *Controller) table(rooms []domain.Room, occ occupancy.Occupancy) []TableRow {
	// Порядок как в браузерном localeCompare: регистр и диакритика вторичны
	col := collate.New(language.Und)
	sorted := append([]domain.Room{}, rooms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return col.CompareString(sorted[i].Number, sorted[j].Number) < 0
	})

	rows := make([]TableRow, 0, len(sorted))
	for _, room := range sorted {
		row := TableRow{
			RoomID:     room.ID,
			RoomNumber: room.Number,
			Status:     domain.StatusAvailable,
			Detail:     domain.StatusAvailable,
		}
		if entries := occ[room.ID]; len(entries) > 0 {
			row.Status = domain.StatusUsed
			row.Detail = c.snapshot.Label(entries)
		}
		rows = append(rows, row)
	}
	return rows
}
