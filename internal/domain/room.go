package domain

// Room аудитория на этаже с геометрией в пикселях исходного плана этажа
type Room struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Floor  int    `json:"floor"`
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// HasGeometry returns true if the room can be drawn on a floor plan
func (r *Room) HasGeometry() bool {
	return r.Width > 0 && r.Height > 0
}
