package domain

import "fmt"

// ClassInfo метаданные занятия, привязанные к записи расписания (не к аудитории)
type ClassInfo struct {
	ScheduleID int64  `json:"scheduleId"`
	Teacher    string `json:"teacher"`
	Grade      string `json:"grade"`
	ClassName  string `json:"className"`
}

// DisplayTeacher returns the teacher name or the placeholder
func (c *ClassInfo) DisplayTeacher() string {
	if c == nil || c.Teacher == "" {
		return DefaultTeacher
	}
	return c.Teacher
}

// DisplayClassName returns the class name or the placeholder
func (c *ClassInfo) DisplayClassName() string {
	if c == nil || c.ClassName == "" {
		return DefaultClassName
	}
	return c.ClassName
}

// HasGrade returns true if the grade should be shown
// Пустой и нулевой уровень не отображаются
func (c *ClassInfo) HasGrade() bool {
	return c != nil && c.Grade != "" && c.Grade != NoGrade
}

// GradeLabel returns "Grade N" or an empty string
func (c *ClassInfo) GradeLabel() string {
	if !c.HasGrade() {
		return ""
	}
	return fmt.Sprintf("Grade %s", c.Grade)
}

// Label формирует подпись "{className} - {teacher}" с необязательным " (Grade N)"
func (c *ClassInfo) Label() string {
	label := fmt.Sprintf("%s - %s", c.DisplayClassName(), c.DisplayTeacher())
	if c.HasGrade() {
		label += fmt.Sprintf(" (%s)", c.GradeLabel())
	}
	return label
}
