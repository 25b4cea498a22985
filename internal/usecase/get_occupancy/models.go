package get_occupancy

import "github.com/m04kA/SMC-RoomOccupancy/internal/domain"

// Request модель запроса занятости этажа
type Request struct {
	Day    string // День из расписания
	Period string // Урок из расписания
	Floor  int    // Этаж
}

// Response занятые аудитории этажа
// Свободные аудитории в ответ не попадают
type Response struct {
	Day    string
	Period string
	Floor  int
	Rooms  []OccupiedRoom // Отсортированы по ID аудитории
}

// OccupiedRoom занятая аудитория
type OccupiedRoom struct {
	Room    domain.Room
	Classes []Class // В порядке загрузки расписания
	Label   string  // Подписи занятий через "; "
}

// Class занятие в аудитории
type Class struct {
	Entry domain.ScheduleEntry
	Info  *domain.ClassInfo // nil, если описание занятия не найдено
	Label string
}
