package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	"github.com/m04kA/SMC-ViewingService/internal/travel"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PropertyID int64     // ID объекта
	Date       time.Time // Дата без времени; нулевое значение означает сегодня
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time
	PropertyID int64
	Location   Location
	Slots      []Slot
}

// Location координаты объекта и точность геокодирования
type Location struct {
	Lat       float64
	Lon       float64
	Precision travel.Precision
}

// Slot модель временного слота
type Slot struct {
	Time          types.TimeString
	Status        scheduling.SlotStatus
	TravelMinutes *int // только если дорога от предыдущего показа больше нуля
}
