package export

import "errors"

var (
	// ErrBuildWorkbook возвращается при ошибке построения книги
	ErrBuildWorkbook = errors.New("export: failed to build workbook")

	// ErrWrite возвращается при ошибке записи книги
	ErrWrite = errors.New("export: failed to write workbook")
)
