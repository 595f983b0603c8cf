package create_viewing

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// Request модель запроса арендатора на показ
type Request struct {
	PropertyID    int64
	TenantName    string
	TenantEmail   string
	TenantPhone   string
	RequestedDate time.Time // Дата без времени; нулевое значение означает сегодня
	RequestedTime types.TimeString
	Message       *string

	// Smart Profile (опционально)
	MoveInDate *time.Time
	Occupants  *int
	RentBudget *float64
}

// Response модель ответа с созданным показом
type Response struct {
	ID            int64
	AgencyID      int64
	AgentID       int64
	PropertyID    int64
	PropertyTitle string

	TenantName  string
	TenantEmail string
	TenantPhone string

	RequestedDate time.Time
	RequestedTime types.TimeString
	Status        string
	Message       *string

	MoveInDate *time.Time
	Occupants  *int
	RentBudget *float64

	CreatedAt time.Time
}
