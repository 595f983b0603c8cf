package travel

import "math"

// EarthRadiusKm радиус Земли для формулы гаверсинуса
const EarthRadiusKm = 6371.0

// roundingEpsilon гасит погрешность float, чтобы ровно 15.0 не превратилось в 20
const roundingEpsilon = 1e-9

// Config параметры модели времени в пути
type Config struct {
	AverageSpeedKmh        float64
	FixedCostMinutes       int
	RoundingUnitMinutes    int
	UnknownLocationMinutes int
}

// DefaultConfig 30 км/ч, +5 минут на парковку, округление вверх до 5 минут, 30 минут для неизвестных адресов
func DefaultConfig() Config {
	return Config{
		AverageSpeedKmh:        30,
		FixedCostMinutes:       5,
		RoundingUnitMinutes:    5,
		UnknownLocationMinutes: 30,
	}
}

// Estimator оценивает время в пути между двумя адресами
type Estimator struct {
	cfg      Config
	resolver *Resolver
}

func NewEstimator(cfg Config, resolver *Resolver) *Estimator {
	return &Estimator{cfg: cfg, resolver: resolver}
}

// Estimate возвращает время в пути в минутах (>= 0)
func (e *Estimator) Estimate(from, to string) int {
	if NormalizeKey(from) == NormalizeKey(to) {
		return 0
	}

	a := e.resolver.Resolve(from, "")
	b := e.resolver.Resolve(to, "")

	// Два неизвестных адреса не считаем одной точкой
	if a.IsDefault() && b.IsDefault() {
		return e.cfg.UnknownLocationMinutes
	}

	distance := Haversine(a.Coordinates, b.Coordinates)
	minutes := distance/e.cfg.AverageSpeedKmh*60 + float64(e.cfg.FixedCostMinutes)

	return RoundUp(minutes, e.cfg.RoundingUnitMinutes)
}

// Haversine расстояние по большому кругу в километрах
func Haversine(a, b Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RoundUp округляет вверх до ближайшего кратного unit
func RoundUp(minutes float64, unit int) int {
	if unit <= 0 {
		return int(math.Ceil(minutes))
	}
	u := float64(unit)
	return int(math.Ceil(minutes/u-roundingEpsilon)) * unit
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
