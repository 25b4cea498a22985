package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/psqlbuilder"
)

var (
	roomColumns     = []string{"RoomID", "RoomNumber", "RoomFloor", "RoomType", "X", "Y", "Width", "Height"}
	classColumns    = []string{"ScheduleID", "TeacherName", "GradeLevel", "ClassName"}
	scheduleColumns = []string{"ScheduleID", "ClassID", "Day", "Period", "RoomID"}
)

// Repository читает таблицы расписания целиком
// Значения не интерпретируются: проверку и приведение типов выполняет records.Normalize
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadDocument читает все три таблицы
func (r *Repository) LoadDocument(ctx context.Context) (*records.Document, error) {
	rooms, err := r.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	classInfo, err := r.ListClassInfo(ctx)
	if err != nil {
		return nil, err
	}

	schedules, err := r.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}

	return &records.Document{
		Rooms:     rooms,
		ClassInfo: classInfo,
		Schedules: schedules,
	}, nil
}

// ListRooms читает таблицу RoomInfo
func (r *Repository) ListRooms(ctx context.Context) ([]records.RoomRow, error) {
	var result []records.RoomRow
	err := r.scanTable(ctx, "ListRooms", domain.TableRoomInfo, roomColumns, func(f []records.Field) {
		result = append(result, records.RoomRow{
			RoomID:     f[0],
			RoomNumber: f[1],
			RoomFloor:  f[2],
			RoomType:   f[3],
			X:          f[4],
			Y:          f[5],
			Width:      f[6],
			Height:     f[7],
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListClassInfo читает таблицу ClassInfo
func (r *Repository) ListClassInfo(ctx context.Context) ([]records.ClassInfoRow, error) {
	var result []records.ClassInfoRow
	err := r.scanTable(ctx, "ListClassInfo", domain.TableClassInfo, classColumns, func(f []records.Field) {
		result = append(result, records.ClassInfoRow{
			ScheduleID:  f[0],
			TeacherName: f[1],
			GradeLevel:  f[2],
			ClassName:   f[3],
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListSchedules читает таблицу ClassSchedule
func (r *Repository) ListSchedules(ctx context.Context) ([]records.ScheduleRow, error) {
	var result []records.ScheduleRow
	err := r.scanTable(ctx, "ListSchedules", domain.TableClassSchedule, scheduleColumns, func(f []records.Field) {
		result = append(result, records.ScheduleRow{
			ScheduleID: f[0],
			ClassID:    f[1],
			Day:        f[2],
			Period:     f[3],
			RoomID:     f[4],
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// scanTable выполняет SELECT по таблице и передает каждую строку в emit
// Первая колонка - ключ таблицы, по ней задается порядок загрузки
func (r *Repository) scanTable(ctx context.Context, op, table string, columns []string, emit func([]records.Field)) error {
	query, args, err := psqlbuilder.Select(psqlbuilder.QuoteAll(columns...)...).
		From(psqlbuilder.Quote(table)).
		OrderBy(psqlbuilder.Quote(columns[0])).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		fields := make([]records.Field, len(columns))
		for i, v := range values {
			if v.Valid {
				fields[i] = records.Text(v.String)
			}
		}
		emit(fields)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return nil
}
