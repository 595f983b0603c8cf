package slots

import "errors"

// ErrCache возвращается при ошибке обращения к кэшу
var ErrCache = errors.New("slots.cache: cache operation failed")
