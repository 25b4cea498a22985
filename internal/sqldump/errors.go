package sqldump

import "errors"

var (
	// ErrRead возвращается при ошибке чтения дампа
	ErrRead = errors.New("sqldump: failed to read dump")
)
