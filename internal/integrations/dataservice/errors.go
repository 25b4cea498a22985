package dataservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("dataservice client: internal error")

	// ErrUnauthorized возвращается, когда удаленный сервис отклонил токен
	ErrUnauthorized = errors.New("dataservice client: unauthorized")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("dataservice client: invalid response")
)
