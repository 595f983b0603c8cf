package scheduling

import "errors"

// ErrInvalidInput возвращается при некорректных входных данных, сообщение содержит имя поля
var ErrInvalidInput = errors.New("scheduling: invalid input")
