package scheduling

// Config константы движка в минутах
type Config struct {
	// ViewingDurationMinutes длительность одного показа
	ViewingDurationMinutes int
	// TravelBufferMinutes минимальный запас между показами сверх времени в пути
	TravelBufferMinutes int
	// SlotStepMinutes шаг сетки кандидатов и ширина интервала при проверке блокировок
	SlotStepMinutes int
	// TightThresholdMinutes время в пути от предыдущего показа, выше которого слот считается tight
	TightThresholdMinutes int
	// SameDayLeadMinutes минимальный запас до начала слота при записи на сегодня
	SameDayLeadMinutes int
}

// DefaultConfig значения по умолчанию: показ 20 минут, запас 10, шаг 30, порог 20, запас на сегодня 30
func DefaultConfig() Config {
	return Config{
		ViewingDurationMinutes: 20,
		TravelBufferMinutes:    10,
		SlotStepMinutes:        30,
		TightThresholdMinutes:  20,
		SameDayLeadMinutes:     30,
	}
}
