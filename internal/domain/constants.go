package domain

// Значения по умолчанию для отображения занятости
const (
	DefaultTeacher   = "Unknown"
	DefaultClassName = "Class"
	StatusAvailable  = "Available"
	StatusUsed       = "Used"
)

// Разделители подписей
const (
	// LabelSeparator разделяет несколько занятий в одной аудитории (табличный вид)
	LabelSeparator = "; "

	// NoGrade значение GradeLevel, которое считается отсутствующим
	NoGrade = "0"
)

// Имена исходных таблиц
const (
	TableRoomInfo      = "RoomInfo"
	TableClassInfo     = "ClassInfo"
	TableClassSchedule = "ClassSchedule"
)
