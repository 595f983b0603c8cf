package viewings

import "errors"

var (
	// ErrViewingNotFound возвращается, когда показ не найден
	ErrViewingNotFound = errors.New("viewing not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid status. Must be confirmed, declined, or pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInfeasible возвращается, когда подтверждаемое время не помещается в расписание агента
	ErrInfeasible = errors.New("viewing time is not feasible")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
