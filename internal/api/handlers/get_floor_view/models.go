package get_floor_view

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_floor_view"
	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
)

// ViewResponse кадр вида этажа
type ViewResponse struct {
	Selection  SelectionItem `json:"selection"`
	FloorLabel string        `json:"floorLabel"`
	ImageURL   string        `json:"imageUrl,omitempty"`
	Table      []TableItem   `json:"table"`
	Overlay    *OverlayItem  `json:"overlay"` // null, если для этажа нет плана
	Options    OptionsItem   `json:"options"`
}

type SelectionItem struct {
	Day    string `json:"day"`
	Period string `json:"period"`
	Floor  int    `json:"floor"`
}

type TableItem struct {
	RoomID     int64  `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
	Status     string `json:"status"`
	Detail     string `json:"detail"`
}

type OverlayItem struct {
	ScaleX float64           `json:"scaleX"`
	ScaleY float64           `json:"scaleY"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Rooms  []OverlayRoomItem `json:"rooms"`
}

type OverlayRoomItem struct {
	RoomID int64       `json:"roomId"`
	Number string      `json:"number"`
	Left   float64     `json:"left"`
	Top    float64     `json:"top"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Used   bool        `json:"used"`
	Blocks []BlockItem `json:"blocks,omitempty"`
}

// BlockItem блок всплывающей подсказки
type BlockItem struct {
	RoomNumber string `json:"roomNumber"`
	ClassName  string `json:"className"`
	Teacher    string `json:"teacher"`
	Grade      string `json:"grade,omitempty"`
}

type OptionsItem struct {
	Days    []string    `json:"days"`
	Periods []string    `json:"periods"`
	Floors  []FloorItem `json:"floors"`
}

type FloorItem struct {
	Floor    int    `json:"floor"`
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ParseQuery разбирает query-параметры day, period, floor, width, height
// Отсутствующий параметр оставляет значение по умолчанию
func ParseQuery(query url.Values) (*get_floor_view.Request, error) {
	req := &get_floor_view.Request{}

	if v, ok := lookup(query, "day"); ok {
		req.Day = &v
	}
	if v, ok := lookup(query, "period"); ok {
		req.Period = &v
	}
	if v, ok := lookup(query, "floor"); ok {
		floor, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("floor: %w", err)
		}
		req.Floor = &floor
	}

	var err error
	if req.Width, err = parseSize(query, "width"); err != nil {
		return nil, err
	}
	if req.Height, err = parseSize(query, "height"); err != nil {
		return nil, err
	}

	return req, nil
}

func lookup(query url.Values, key string) (string, bool) {
	if _, ok := query[key]; !ok {
		return "", false
	}
	return query.Get(key), true
}

func parseSize(query url.Values, key string) (float64, error) {
	v, ok := lookup(query, key)
	if !ok || v == "" {
		return 0, nil
	}
	size, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return size, nil
}

// ToResponse переводит кадр в формат API
func ToResponse(resp *get_floor_view.Response, images ImageLocator) *ViewResponse {
	frame := resp.Frame
	result := &ViewResponse{
		Selection: SelectionItem{
			Day:    frame.Selection.Day,
			Period: frame.Selection.Period,
			Floor:  frame.Selection.Floor,
		},
		FloorLabel: frame.FloorLabel,
		ImageURL:   images.ImageURL(frame.Selection.Floor),
		Table:      make([]TableItem, 0, len(frame.Table)),
		Overlay:    toOverlay(frame.Overlay),
		Options: OptionsItem{
			Days:    resp.Options.Days,
			Periods: resp.Options.Periods,
			Floors:  make([]FloorItem, 0, len(resp.Options.Floors)),
		},
	}

	for _, row := range frame.Table {
		result.Table = append(result.Table, TableItem{
			RoomID:     row.RoomID,
			RoomNumber: row.RoomNumber,
			Status:     row.Status,
			Detail:     row.Detail,
		})
	}

	for _, f := range resp.Options.Floors {
		result.Options.Floors = append(result.Options.Floors, FloorItem{
			Floor:    f.Floor,
			Label:    f.Label,
			ImageURL: images.ImageURL(f.Floor),
		})
	}

	return result
}

func toOverlay(overlay *view.Overlay) *OverlayItem {
	if overlay == nil {
		return nil
	}

	result := &OverlayItem{
		ScaleX: overlay.ScaleX,
		ScaleY: overlay.ScaleY,
		Width:  overlay.Width,
		Height: overlay.Height,
		Rooms:  make([]OverlayRoomItem, 0, len(overlay.Rooms)),
	}
	for _, room := range overlay.Rooms {
		result.Rooms = append(result.Rooms, OverlayRoomItem{
			RoomID: room.RoomID,
			Number: room.Number,
			Left:   room.Left,
			Top:    room.Top,
			Width:  room.Width,
			Height: room.Height,
			Used:   room.Used,
			Blocks: toBlocks(room.Blocks),
		})
	}
	return result
}

func toBlocks(blocks []occupancy.ClassBlock) []BlockItem {
	if len(blocks) == 0 {
		return nil
	}
	result := make([]BlockItem, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, BlockItem{
			RoomNumber: b.RoomNumber,
			ClassName:  b.ClassName,
			Teacher:    b.Teacher,
			Grade:      b.Grade,
		})
	}
	return result
}
