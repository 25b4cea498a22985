package dataset

import "errors"

var (
	// ErrCacheMiss возвращается, когда набор данных отсутствует в кэше
	ErrCacheMiss = errors.New("dataset.cache: cache miss")

	// ErrCache возвращается при ошибках обращения к хранилищу кэша
	ErrCache = errors.New("dataset.cache: storage error")

	// ErrDecode возвращается, когда закэшированное значение не разбирается
	ErrDecode = errors.New("dataset.cache: failed to decode cached document")
)
