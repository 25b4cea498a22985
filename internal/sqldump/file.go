package sqldump

import (
	"context"
	"fmt"
	"os"

	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FileSource читает набор данных из файла дампа
// Файл перечитывается при каждой загрузке
type FileSource struct {
	path string
	log  Logger
}

// NewFileSource создает источник данных из файла дампа
func NewFileSource(path string, log Logger) *FileSource {
	return &FileSource{path: path, log: log}
}

// LoadDocument разбирает файл дампа
func (s *FileSource) LoadDocument(ctx context.Context) (*records.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrRead, s.path, err)
	}
	defer file.Close()

	doc, stats, err := Parse(file)
	if err != nil {
		return nil, err
	}

	if stats.Skipped > 0 {
		s.log.Warn("SQL dump %s: skipped %d unparseable INSERT lines of %d", s.path, stats.Skipped, stats.Lines)
	}
	s.log.Info("SQL dump %s: rooms=%d, classInfo=%d, schedules=%d",
		s.path, len(doc.Rooms), len(doc.ClassInfo), len(doc.Schedules))

	return doc, nil
}
