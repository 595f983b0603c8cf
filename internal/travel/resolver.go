package travel

import (
	"strings"
	"unicode"
)

// Precision показывает, на каком шаге цепочки был разрешен ключ
type Precision string

const (
	PrecisionExact    Precision = "exact"
	PrecisionPrefix   Precision = "prefix"
	PrecisionFallback Precision = "fallback"
	PrecisionDefault  Precision = "default"
)

// Location результат разрешения ключа локации
type Location struct {
	Coordinates
	Precision Precision
}

// IsDefault true, если ни один шаг цепочки не сработал
func (l Location) IsDefault() bool {
	return l.Precision == PrecisionDefault
}

// Resolver разрешает почтовый индекс в координаты
// Таблицы копируются при создании и больше не меняются, поэтому Resolver безопасен для конкурентного использования
type Resolver struct {
	exact  map[string]Coordinates
	prefix map[string]Coordinates
}

// NewResolver создает резолвер со встроенными таблицами Лондона
func NewResolver() *Resolver {
	return NewResolverWithTables(postcodeCoords, prefixCoords)
}

// NewResolverWithTables создает резолвер с произвольными таблицами
// Ключи нормализуются так же, как входные значения Resolve
func NewResolverWithTables(exact, prefix map[string]Coordinates) *Resolver {
	return &Resolver{
		exact:  copyTable(exact),
		prefix: copyTable(prefix),
	}
}

func copyTable(src map[string]Coordinates) map[string]Coordinates {
	dst := make(map[string]Coordinates, len(src))
	for k, v := range src {
		dst[NormalizeKey(k)] = v
	}
	return dst
}

// NormalizeKey обрезает пробелы по краям и приводит к верхнему регистру
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// ExtractPrefix выделяет outward-код из нормализованного ключа
//
//	"W2 4DX"  -> "W2"
//	"SW1A1AA" -> "SW1" (третий символ цифра)
//	"W24DX"   -> "W24"
//	"EC"      -> "EC"
func ExtractPrefix(key string) string {
	if i := strings.IndexByte(key, ' '); i >= 0 {
		return key[:i]
	}

	runes := []rune(key)
	if len(runes) <= 2 {
		return key
	}
	if unicode.IsDigit(runes[2]) {
		return string(runes[:3])
	}
	return string(runes[:2])
}

type lookupStep struct {
	key       string
	lookup    func(key string) (Coordinates, bool)
	precision Precision
}

// Resolve разрешает ключ в координаты, никогда не возвращает ошибку
// Порядок: точное совпадение, префикс, затем то же самое для fallbackKey, затем DefaultCoordinates
func (r *Resolver) Resolve(key, fallbackKey string) Location {
	key = NormalizeKey(key)
	fallbackKey = NormalizeKey(fallbackKey)

	chain := []lookupStep{
		{key: key, lookup: r.lookupExact, precision: PrecisionExact},
		{key: key, lookup: r.lookupPrefix, precision: PrecisionPrefix},
	}
	if fallbackKey != "" {
		chain = append(chain,
			lookupStep{key: fallbackKey, lookup: r.lookupExact, precision: PrecisionFallback},
			lookupStep{key: fallbackKey, lookup: r.lookupPrefix, precision: PrecisionFallback},
		)
	}

	for _, step := range chain {
		if step.key == "" {
			continue
		}
		if c, ok := step.lookup(step.key); ok {
			return Location{Coordinates: c, Precision: step.precision}
		}
	}

	return Location{Coordinates: DefaultCoordinates, Precision: PrecisionDefault}
}

func (r *Resolver) lookupExact(key string) (Coordinates, bool) {
	c, ok := r.exact[key]
	return c, ok
}

func (r *Resolver) lookupPrefix(key string) (Coordinates, bool) {
	c, ok := r.prefix[ExtractPrefix(key)]
	return c, ok
}
