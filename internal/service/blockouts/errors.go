package blockouts

import "errors"

var (
	// ErrBlockoutNotFound возвращается, когда блокировка не найдена
	ErrBlockoutNotFound = errors.New("blockout not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
