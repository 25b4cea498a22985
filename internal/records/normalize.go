package records

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(fieldValue, Field{})
	return v
}

// fieldValue отдает валидатору текст поля, nil для NULL
func fieldValue(v reflect.Value) interface{} {
	f, ok := v.Interface().(Field)
	if !ok || !f.Valid {
		return nil
	}
	return f.String()
}

// NormalizeRoom преобразует строку RoomInfo в domain.Room
func NormalizeRoom(row RoomRow) (domain.Room, error) {
	if err := validate.Struct(row); err != nil {
		return domain.Room{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	id, err := row.RoomID.Int64()
	if err != nil {
		return domain.Room{}, fmt.Errorf("%w: RoomID: %v", ErrMalformedRow, err)
	}
	floor, err := row.RoomFloor.Int64()
	if err != nil {
		return domain.Room{}, fmt.Errorf("%w: RoomFloor: %v", ErrMalformedRow, err)
	}

	room := domain.Room{
		ID:     id,
		Number: row.RoomNumber.String(),
		Floor:  int(floor),
		Type:   row.RoomType.String(),
	}

	geometry := []struct {
		name  string
		field Field
		dst   *int
	}{
		{"X", row.X, &room.X},
		{"Y", row.Y, &room.Y},
		{"Width", row.Width, &room.Width},
		{"Height", row.Height, &room.Height},
	}
	for _, g := range geometry {
		v, err := optionalInt(g.field)
		if err != nil {
			return domain.Room{}, fmt.Errorf("%w: %s: %v", ErrMalformedRow, g.name, err)
		}
		if v < 0 {
			return domain.Room{}, fmt.Errorf("%w: %w: %s=%d", ErrMalformedRow, ErrNegativeGeometry, g.name, v)
		}
		*g.dst = int(v)
	}

	return room, nil
}

// NormalizeClassInfo преобразует строку ClassInfo в domain.ClassInfo
func NormalizeClassInfo(row ClassInfoRow) (domain.ClassInfo, error) {
	if err := validate.Struct(row); err != nil {
		return domain.ClassInfo{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	scheduleID, err := row.ScheduleID.Int64()
	if err != nil {
		return domain.ClassInfo{}, fmt.Errorf("%w: ScheduleID: %v", ErrMalformedRow, err)
	}

	return domain.ClassInfo{
		ScheduleID: scheduleID,
		Teacher:    row.TeacherName.String(),
		Grade:      row.GradeLevel.String(),
		ClassName:  row.ClassName.String(),
	}, nil
}

// NormalizeSchedule преобразует строку ClassSchedule в domain.ScheduleEntry
func NormalizeSchedule(row ScheduleRow) (domain.ScheduleEntry, error) {
	if err := validate.Struct(row); err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	scheduleID, err := row.ScheduleID.Int64()
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: ScheduleID: %v", ErrMalformedRow, err)
	}
	classID, err := optionalInt(row.ClassID)
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: ClassID: %v", ErrMalformedRow, err)
	}
	roomID, err := row.RoomID.Int64()
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: RoomID: %v", ErrMalformedRow, err)
	}

	return domain.ScheduleEntry{
		ScheduleID: scheduleID,
		ClassID:    classID,
		Day:        row.Day.String(),
		Period:     row.Period.String(),
		RoomID:     roomID,
	}, nil
}

// Normalize преобразует документ целиком
// Некорректные строки отбрасываются и возвращаются списком ошибок, остальные загружаются
func Normalize(doc *Document) (domain.Dataset, []RowError) {
	ds := domain.Dataset{
		Rooms:     make([]domain.Room, 0, len(doc.Rooms)),
		ClassInfo: make([]domain.ClassInfo, 0, len(doc.ClassInfo)),
		Schedules: make([]domain.ScheduleEntry, 0, len(doc.Schedules)),
	}
	var rejected []RowError

	for i, row := range doc.Rooms {
		room, err := NormalizeRoom(row)
		if err != nil {
			rejected = append(rejected, RowError{Table: domain.TableRoomInfo, Index: i, Err: err})
			continue
		}
		ds.Rooms = append(ds.Rooms, room)
	}

	for i, row := range doc.ClassInfo {
		info, err := NormalizeClassInfo(row)
		if err != nil {
			rejected = append(rejected, RowError{Table: domain.TableClassInfo, Index: i, Err: err})
			continue
		}
		ds.ClassInfo = append(ds.ClassInfo, info)
	}

	for i, row := range doc.Schedules {
		entry, err := NormalizeSchedule(row)
		if err != nil {
			rejected = append(rejected, RowError{Table: domain.TableClassSchedule, Index: i, Err: err})
			continue
		}
		ds.Schedules = append(ds.Schedules, entry)
	}

	return ds, rejected
}

func optionalInt(f Field) (int64, error) {
	if !f.Valid || f.String() == "" {
		return 0, nil
	}
	return f.Int64()
}
