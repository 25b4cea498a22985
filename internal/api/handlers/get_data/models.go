package get_data

import "github.com/m04kA/SMC-RoomOccupancy/internal/domain"

// Document выдача в формате исходных таблиц, имена полей совпадают с колонками
type Document struct {
	Rooms     []RoomInfo      `json:"rooms"`
	ClassInfo []ClassInfo     `json:"classInfo"`
	Schedules []ClassSchedule `json:"schedules"`
}

// Необязательные колонки без значения отдаются как null

type RoomInfo struct {
	RoomID     int64   `json:"RoomID"`
	RoomNumber string  `json:"RoomNumber"`
	RoomFloor  int     `json:"RoomFloor"`
	RoomType   *string `json:"RoomType"`
	X          int     `json:"X"`
	Y          int     `json:"Y"`
	Width      int     `json:"Width"`
	Height     int     `json:"Height"`
}

type ClassInfo struct {
	ScheduleID  int64   `json:"ScheduleID"`
	TeacherName *string `json:"TeacherName"`
	GradeLevel  *string `json:"GradeLevel"`
	ClassName   *string `json:"ClassName"`
}

type ClassSchedule struct {
	ScheduleID int64  `json:"ScheduleID"`
	ClassID    *int64 `json:"ClassID"`
	Day        string `json:"Day"`
	Period     string `json:"Period"`
	RoomID     int64  `json:"RoomID"`
}

// ErrorBody ответ при ошибке загрузки, совместимый с клиентами /api/data
type ErrorBody struct {
	Error string `json:"error"`
}

// ToDocument переводит нормализованные таблицы в формат выдачи
func ToDocument(ds domain.Dataset) Document {
	doc := Document{
		Rooms:     make([]RoomInfo, 0, len(ds.Rooms)),
		ClassInfo: make([]ClassInfo, 0, len(ds.ClassInfo)),
		Schedules: make([]ClassSchedule, 0, len(ds.Schedules)),
	}

	for _, r := range ds.Rooms {
		doc.Rooms = append(doc.Rooms, RoomInfo{
			RoomID:     r.ID,
			RoomNumber: r.Number,
			RoomFloor:  r.Floor,
			RoomType:   optionalText(r.Type),
			X:          r.X,
			Y:          r.Y,
			Width:      r.Width,
			Height:     r.Height,
		})
	}

	for _, c := range ds.ClassInfo {
		doc.ClassInfo = append(doc.ClassInfo, ClassInfo{
			ScheduleID:  c.ScheduleID,
			TeacherName: optionalText(c.Teacher),
			GradeLevel:  optionalText(c.Grade),
			ClassName:   optionalText(c.ClassName),
		})
	}

	for _, s := range ds.Schedules {
		doc.Schedules = append(doc.Schedules, ClassSchedule{
			ScheduleID: s.ScheduleID,
			ClassID:    optionalID(s.ClassID),
			Day:        s.Day,
			Period:     s.Period,
			RoomID:     s.RoomID,
		})
	}

	return doc
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
