package records

// RoomRow строка таблицы RoomInfo
type RoomRow struct {
	RoomID     Field `json:"RoomID" validate:"required,numeric"`
	RoomNumber Field `json:"RoomNumber" validate:"required"`
	RoomFloor  Field `json:"RoomFloor" validate:"required,numeric"`
	RoomType   Field `json:"RoomType"`
	X          Field `json:"X" validate:"omitempty,numeric"`
	Y          Field `json:"Y" validate:"omitempty,numeric"`
	Width      Field `json:"Width" validate:"omitempty,numeric"`
	Height     Field `json:"Height" validate:"omitempty,numeric"`
}

// ClassInfoRow строка таблицы ClassInfo
type ClassInfoRow struct {
	ScheduleID  Field `json:"ScheduleID" validate:"required,numeric"`
	TeacherName Field `json:"TeacherName"`
	GradeLevel  Field `json:"GradeLevel"`
	ClassName   Field `json:"ClassName"`
}

// ScheduleRow строка таблицы ClassSchedule
type ScheduleRow struct {
	ScheduleID Field `json:"ScheduleID" validate:"required,numeric"`
	ClassID    Field `json:"ClassID" validate:"omitempty,numeric"`
	Day        Field `json:"Day" validate:"required"`
	Period     Field `json:"Period" validate:"required"`
	RoomID     Field `json:"RoomID" validate:"required,numeric"`
}

// Document исходные данные в формате GET /api/data
type Document struct {
	Rooms     []RoomRow      `json:"rooms"`
	ClassInfo []ClassInfoRow `json:"classInfo"`
	Schedules []ScheduleRow  `json:"schedules"`
}

// Len returns the total number of rows in the document
func (d *Document) Len() int {
	return len(d.Rooms) + len(d.ClassInfo) + len(d.Schedules)
}
