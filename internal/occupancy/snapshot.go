package occupancy

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

// Snapshot неизменяемый индекс над загруженным набором данных
// Создается только через Build, после создания не модифицируется
type Snapshot struct {
	rooms        []domain.Room
	classInfo    []domain.ClassInfo
	schedules    []domain.ScheduleEntry
	roomsByID    map[int64]domain.Room
	roomsByFloor map[int][]domain.Room
	classByID    map[int64]domain.ClassInfo
	days         []string
	periods      []string
	floors       []int
	builtAt      time.Time
}

// Build строит индексы по набору данных с нуля
func Build(ds domain.Dataset) *Snapshot {
	s := &Snapshot{
		rooms:        append([]domain.Room(nil), ds.Rooms...),
		classInfo:    append([]domain.ClassInfo(nil), ds.ClassInfo...),
		schedules:    append([]domain.ScheduleEntry(nil), ds.Schedules...),
		roomsByID:    make(map[int64]domain.Room, len(ds.Rooms)),
		roomsByFloor: make(map[int][]domain.Room),
		classByID:    make(map[int64]domain.ClassInfo, len(ds.ClassInfo)),
		builtAt:      time.Now(),
	}

	for _, room := range s.rooms {
		s.roomsByID[room.ID] = room
		s.roomsByFloor[room.Floor] = append(s.roomsByFloor[room.Floor], room)
	}

	for _, info := range s.classInfo {
		s.classByID[info.ScheduleID] = info
	}

	s.days = distinctSorted(s.schedules, func(e domain.ScheduleEntry) string { return e.Day })
	s.periods = distinctSorted(s.schedules, func(e domain.ScheduleEntry) string { return e.Period })

	s.floors = make([]int, 0, len(s.roomsByFloor))
	for floor := range s.roomsByFloor {
		s.floors = append(s.floors, floor)
	}
	sort.Ints(s.floors)

	return s
}

func distinctSorted(entries []domain.ScheduleEntry, key func(domain.ScheduleEntry) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, e := range entries {
		v := key(e)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Room returns a room by id
func (s *Snapshot) Room(id int64) (domain.Room, bool) {
	room, ok := s.roomsByID[id]
	return room, ok
}

// RoomsOnFloor returns rooms of the floor in load order
func (s *Snapshot) RoomsOnFloor(floor int) []domain.Room {
	return append([]domain.Room{}, s.roomsByFloor[floor]...)
}

// ClassInfo returns class metadata of a schedule entry
func (s *Snapshot) ClassInfo(scheduleID int64) (domain.ClassInfo, bool) {
	info, ok := s.classByID[scheduleID]
	return info, ok
}

// Days returns the sorted distinct days
func (s *Snapshot) Days() []string {
	return append([]string{}, s.days...)
}

// Periods returns the sorted distinct periods
func (s *Snapshot) Periods() []string {
	return append([]string{}, s.periods...)
}

// Floors returns floors that have at least one room, ascending
func (s *Snapshot) Floors() []int {
	return append([]int{}, s.floors...)
}

// Dataset returns a copy of the source tables in load order
func (s *Snapshot) Dataset() domain.Dataset {
	return domain.Dataset{
		Rooms:     append([]domain.Room{}, s.rooms...),
		ClassInfo: append([]domain.ClassInfo{}, s.classInfo...),
		Schedules: append([]domain.ScheduleEntry{}, s.schedules...),
	}
}

// Stats returns row counts of the indexed tables
func (s *Snapshot) Stats() Stats {
	return Stats{
		Rooms:     len(s.rooms),
		ClassInfo: len(s.classInfo),
		Schedules: len(s.schedules),
		BuiltAt:   s.builtAt,
	}
}

// Stats размеры проиндексированных таблиц
type Stats struct {
	Rooms     int
	ClassInfo int
	Schedules int
	BuiltAt   time.Time
}
