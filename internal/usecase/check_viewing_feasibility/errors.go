package check_viewing_feasibility

import "errors"

var (
	// ErrViewingNotFound возвращается, когда показ не найден
	ErrViewingNotFound = errors.New("viewing not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
