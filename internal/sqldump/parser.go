package sqldump

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// maxLineSize максимальная длина одной INSERT-строки
const maxLineSize = 1 << 20

var valuesPattern = regexp.MustCompile(`VALUES \((.*)\);$`)

// Stats статистика разбора дампа
type Stats struct {
	Lines   int
	Skipped int
}

// Parse читает текстовый дамп (одна инструкция INSERT на строку)
// и раскладывает значения по схемам исходных таблиц
// Строки других таблиц и строки без VALUES пропускаются
func Parse(r io.Reader) (*records.Document, Stats, error) {
	doc := &records.Document{}
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		stats.Lines++

		table, ok := tableOf(line)
		if !ok {
			continue
		}

		values, ok := ParseValues(line)
		if !ok {
			stats.Skipped++
			continue
		}

		switch table {
		case domain.TableRoomInfo:
			doc.Rooms = append(doc.Rooms, records.RoomRow{
				RoomID:     at(values, 0),
				RoomNumber: at(values, 1),
				RoomFloor:  at(values, 2),
				RoomType:   at(values, 3),
				X:          at(values, 4),
				Y:          at(values, 5),
				Width:      at(values, 6),
				Height:     at(values, 7),
			})
		case domain.TableClassInfo:
			doc.ClassInfo = append(doc.ClassInfo, records.ClassInfoRow{
				ScheduleID:  at(values, 0),
				TeacherName: at(values, 1),
				GradeLevel:  at(values, 2),
				ClassName:   at(values, 3),
			})
		case domain.TableClassSchedule:
			doc.Schedules = append(doc.Schedules, records.ScheduleRow{
				ScheduleID: at(values, 0),
				ClassID:    at(values, 1),
				Day:        at(values, 2),
				Period:     at(values, 3),
				RoomID:     at(values, 4),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return doc, stats, nil
}

// ParseValues извлекает список значений из "INSERT ... VALUES (...);"
// Запятые внутри строк в одинарных кавычках не разделяют значения
func ParseValues(line string) ([]records.Field, bool) {
	match := valuesPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	raw := match[1]

	var (
		tokens   []string
		current  strings.Builder
		inString bool
	)
	for _, ch := range raw {
		switch {
		case ch == '\'':
			// удвоенная кавычка переключает состояние дважды и остается внутри строки
			inString = !inString
			current.WriteRune(ch)
		case ch == ',' && !inString:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	tokens = append(tokens, strings.TrimSpace(current.String()))

	values := make([]records.Field, len(tokens))
	for i, token := range tokens {
		values[i] = toField(token)
	}
	return values, true
}

func toField(token string) records.Field {
	if token == "NULL" {
		return records.Null()
	}
	if len(token) >= 2 && strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") {
		return records.Text(strings.ReplaceAll(token[1:len(token)-1], "''", "'"))
	}
	return records.Text(token)
}

func tableOf(line string) (string, bool) {
	for _, table := range []string{domain.TableRoomInfo, domain.TableClassInfo, domain.TableClassSchedule} {
		if strings.HasPrefix(line, fmt.Sprintf(`INSERT INTO "%s"`, table)) {
			return table, true
		}
	}
	return "", false
}

func at(values []records.Field, i int) records.Field {
	if i < len(values) {
		return values[i]
	}
	return records.Null()
}
