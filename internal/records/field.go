package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field значение ячейки исходной таблицы
// Valid = false для NULL и отсутствующих значений
type Field struct {
	Text  string
	Valid bool
}

// Text создает заполненное поле
func Text(s string) Field {
	return Field{Text: s, Valid: true}
}

// Null создает пустое поле
func Null() Field {
	return Field{}
}

// Int создает числовое поле
func Int(v int64) Field {
	return Text(strconv.FormatInt(v, 10))
}

// UnmarshalJSON принимает строки, числа, bool и null
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Field{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Text(s)
		return nil
	}

	switch data[0] {
	case '{', '[':
		return fmt.Errorf("records: unsupported field value %s", string(data))
	}

	*f = Text(string(data))
	return nil
}

// MarshalJSON кодирует поле строкой, пустое поле - null
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Text)
}

// String returns the trimmed text of the field
func (f Field) String() string {
	return strings.TrimSpace(f.Text)
}

// Int64 parses the field as an integral number
// Допускается запись вида "3.0", дробные значения отклоняются
func (f Field) Int64() (int64, error) {
	s := f.String()
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, f.Text)
	}
	if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, f.Text)
	}
	return int64(v), nil
}
