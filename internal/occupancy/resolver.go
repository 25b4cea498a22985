package occupancy

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

// Occupancy занятые аудитории: roomID -> записи расписания в порядке загрузки
// Свободная аудитория в карте отсутствует
type Occupancy map[int64][]domain.ScheduleEntry

// RoomIDs returns occupied room ids in ascending order
func (o Occupancy) RoomIDs() []int64 {
	ids := make([]int64, 0, len(o))
	for id := range o {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsOccupied returns true if the room has at least one entry
func (o Occupancy) IsOccupied(roomID int64) bool {
	return len(o[roomID]) > 0
}

// Resolve возвращает занятость аудиторий этажа в заданный день и урок
// Полный проход по расписанию: записи с несуществующей аудиторией и с других этажей отбрасываются,
// двойные бронирования сохраняются в исходном порядке
func (s *Snapshot) Resolve(day, period string, floor int) Occupancy {
	occupancy := make(Occupancy)

	for _, entry := range s.schedules {
		if !entry.Matches(day, period) {
			continue
		}
		room, ok := s.roomsByID[entry.RoomID]
		if !ok || room.Floor != floor {
			continue
		}
		occupancy[room.ID] = append(occupancy[room.ID], entry)
	}

	return occupancy
}

// Label формирует подпись для табличного вида, занятия разделены "; "
func (s *Snapshot) Label(entries []domain.ScheduleEntry) string {
	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		info := s.classInfoOrNil(entry.ScheduleID)
		labels = append(labels, info.Label())
	}
	return strings.Join(labels, domain.LabelSeparator)
}

// ClassBlock один блок всплывающей подсказки на плане этажа
type ClassBlock struct {
	RoomNumber string
	ClassName  string
	Teacher    string
	Grade      string
}

// Blocks формирует блоки подсказки, по одному на каждое занятие
func (s *Snapshot) Blocks(room domain.Room, entries []domain.ScheduleEntry) []ClassBlock {
	blocks := make([]ClassBlock, 0, len(entries))
	for _, entry := range entries {
		info := s.classInfoOrNil(entry.ScheduleID)
		blocks = append(blocks, ClassBlock{
			RoomNumber: room.Number,
			ClassName:  info.DisplayClassName(),
			Teacher:    info.DisplayTeacher(),
			Grade:      info.GradeLabel(),
		})
	}
	return blocks
}

func (s *Snapshot) classInfoOrNil(scheduleID int64) *domain.ClassInfo {
	info, ok := s.classByID[scheduleID]
	if !ok {
		return nil
	}
	return &info
}
