package create_viewing

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("create_viewing: property not found")

	// ErrDateInPast возвращается, когда дата показа раньше сегодняшней
	ErrDateInPast = errors.New("create_viewing: cannot book a viewing in the past")

	// ErrTooLateToBook возвращается, когда время сегодня ближе минимального запаса
	ErrTooLateToBook = errors.New("create_viewing: time must be later than now plus lead time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_viewing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_viewing: internal error")
)
