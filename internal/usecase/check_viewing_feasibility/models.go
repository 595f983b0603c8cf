package check_viewing_feasibility

import "github.com/m04kA/SMC-ViewingService/internal/scheduling"

// Request модель запроса проверки показа
type Request struct {
	ViewingID int64
}

// Response результат проверки с подписью для интерфейса агента
type Response struct {
	ViewingID     int64
	Status        scheduling.SlotStatus
	Label         string
	Color         string
	Reason        *string
	TravelMinutes *int
}

type badge struct {
	label string
	color string
}

var badges = map[scheduling.SlotStatus]badge{
	scheduling.SlotOK:       {label: "OK", color: "#4caf50"},
	scheduling.SlotTight:    {label: "Tight", color: "#ff9800"},
	scheduling.SlotConflict: {label: "Conflict", color: "#f44336"},
}
