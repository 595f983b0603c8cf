package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ViewingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	PropertyID int64           `json:"propertyId"`
	Location   Location        `json:"location"`
	Slots      []AvailableSlot `json:"slots"`
}

// Location координаты объекта
type Location struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Precision string  `json:"precision"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time          string `json:"time"`
	Status        string `json:"status"`
	TravelMinutes *int   `json:"travelMinutes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:          slot.Time.String(),
			Status:        string(slot.Status),
			TravelMinutes: slot.TravelMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		PropertyID: resp.PropertyID,
		Location: Location{
			Lat:       resp.Location.Lat,
			Lon:       resp.Location.Lon,
			Precision: string(resp.Location.Precision),
		},
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case; пустая дата означает сегодня
func ToUseCaseRequest(propertyID int64, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{PropertyID: propertyID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date

	return req, nil
}
