package get_occupancy

import (
	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_occupancy"
)

// OccupancyResponse занятые аудитории этажа
type OccupancyResponse struct {
	Day    string          `json:"day"`
	Period string          `json:"period"`
	Floor  int             `json:"floor"`
	Rooms  []RoomOccupancy `json:"rooms"`
}

// RoomOccupancy занятая аудитория с занятиями
type RoomOccupancy struct {
	Room    domain.Room `json:"room"`
	Label   string      `json:"label"`
	Classes []ClassItem `json:"classes"`
}

// ClassItem занятие, пустые поля описания означают отсутствие ClassInfo
type ClassItem struct {
	ScheduleID int64  `json:"scheduleId"`
	ClassID    int64  `json:"classId"`
	ClassName  string `json:"className"`
	Teacher    string `json:"teacher"`
	Grade      string `json:"grade"`
	Label      string `json:"label"`
}

// ToResponse переводит ответ use case в формат API
func ToResponse(resp *get_occupancy.Response) *OccupancyResponse {
	result := &OccupancyResponse{
		Day:    resp.Day,
		Period: resp.Period,
		Floor:  resp.Floor,
		Rooms:  make([]RoomOccupancy, 0, len(resp.Rooms)),
	}

	for _, room := range resp.Rooms {
		item := RoomOccupancy{
			Room:    room.Room,
			Label:   room.Label,
			Classes: make([]ClassItem, 0, len(room.Classes)),
		}
		for _, class := range room.Classes {
			ci := ClassItem{
				ScheduleID: class.Entry.ScheduleID,
				ClassID:    class.Entry.ClassID,
				Label:      class.Label,
			}
			if class.Info != nil {
				ci.ClassName = class.Info.ClassName
				ci.Teacher = class.Info.Teacher
				ci.Grade = class.Info.Grade
			}
			item.Classes = append(item.Classes, ci)
		}
		result.Rooms = append(result.Rooms, item)
	}

	return result
}
