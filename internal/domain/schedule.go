package domain

// ScheduleEntry факт занятости: занятие проходит в аудитории в конкретный день и урок
type ScheduleEntry struct {
	ScheduleID int64  `json:"scheduleId"`
	ClassID    int64  `json:"classId"`
	Day        string `json:"day"`
	Period     string `json:"period"`
	RoomID     int64  `json:"roomId"`
}

// Matches returns true if the entry takes place at the given day and period
func (e *ScheduleEntry) Matches(day, period string) bool {
	return e.Day == day && e.Period == period
}

// Dataset нормализованные таблицы в порядке загрузки
type Dataset struct {
	Rooms     []Room          `json:"rooms"`
	ClassInfo []ClassInfo     `json:"classInfo"`
	Schedules []ScheduleEntry `json:"schedules"`
}

// IsEmpty returns true if the dataset has no rows at all
func (d *Dataset) IsEmpty() bool {
	return len(d.Rooms) == 0 && len(d.ClassInfo) == 0 && len(d.Schedules) == 0
}
