package load_dataset

import (
	"time"

	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// Статусы загрузки для метрик
const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// Request модель запроса на загрузку набора данных
type Request struct {
	Force bool // Не читать кэш, загрузить из источника
}

// Response итог загрузки
type Response struct {
	Source    string             // Тип источника (postgres, remote, sqldump)
	FromCache bool               // Документ взят из кэша
	Rooms     int                // Загружено аудиторий
	ClassInfo int                // Загружено описаний занятий
	Schedules int                // Загружено записей расписания
	Rejected  []records.RowError // Отклоненные строки
	Days      []string           // Дни, найденные в расписании
	Periods   []string           // Уроки, найденные в расписании
	Floors    []int              // Этажи, найденные среди аудиторий
	BuiltAt   time.Time          // Время построения снимка
}
