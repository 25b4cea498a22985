package load_dataset

import "errors"

var (
	// ErrSourceUnavailable возвращается, когда источник данных не ответил
	ErrSourceUnavailable = errors.New("load_dataset: source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("load_dataset: internal error")
)
