package records

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow возвращается, когда строка исходной таблицы не проходит проверку
	ErrMalformedRow = errors.New("records: malformed row")

	// ErrNotInteger возвращается, когда числовое поле не является целым числом
	ErrNotInteger = errors.New("records: value is not an integer")

	// ErrNegativeGeometry возвращается при отрицательных координатах или размерах аудитории
	ErrNegativeGeometry = errors.New("records: negative room geometry")
)

// RowError описывает отклонённую строку исходной таблицы
type RowError struct {
	Table string
	Index int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Table, e.Index, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
