package create_viewing

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	createViewing "github.com/m04kA/SMC-ViewingService/internal/usecase/create_viewing"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// CreateViewingRequest HTTP request model
type CreateViewingRequest struct {
	PropertyID    int64   `json:"propertyId"`
	TenantName    string  `json:"tenantName"`
	TenantEmail   string  `json:"tenantEmail"`
	TenantPhone   string  `json:"tenantPhone"`
	RequestedDate string  `json:"requestedDate,omitempty"` // "2025-10-15", по умолчанию сегодня
	RequestedTime string  `json:"requestedTime"`           // "10:00"
	Message       *string `json:"message,omitempty"`

	MoveInDate *string  `json:"moveInDate,omitempty"`
	Occupants  *int     `json:"occupants,omitempty"`
	RentBudget *float64 `json:"rentBudget,omitempty"`
}

// ViewingResponse HTTP response model
type ViewingResponse struct {
	ID            int64    `json:"id"`
	AgencyID      int64    `json:"agencyId"`
	AgentID       int64    `json:"agentId"`
	PropertyID    int64    `json:"propertyId"`
	PropertyTitle string   `json:"propertyTitle"`
	TenantName    string   `json:"tenantName"`
	TenantEmail   string   `json:"tenantEmail"`
	TenantPhone   string   `json:"tenantPhone"`
	RequestedDate string   `json:"requestedDate"`
	RequestedTime string   `json:"requestedTime"`
	Status        string   `json:"status"`
	Message       *string  `json:"message,omitempty"`
	MoveInDate    *string  `json:"moveInDate,omitempty"`
	Occupants     *int     `json:"occupants,omitempty"`
	RentBudget    *float64 `json:"rentBudget,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

type parseError struct {
	msg string
	err error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибка парсинга несет текст сообщения для клиента
func (r *CreateViewingRequest) ToUseCaseRequest() (*createViewing.Request, error) {
	req := &createViewing.Request{
		PropertyID:  r.PropertyID,
		TenantName:  r.TenantName,
		TenantEmail: r.TenantEmail,
		TenantPhone: r.TenantPhone,
		Message:     r.Message,
		Occupants:   r.Occupants,
		RentBudget:  r.RentBudget,
	}

	if r.RequestedDate != "" {
		date, err := time.Parse(domain.DateFormat, r.RequestedDate)
		if err != nil {
			return nil, &parseError{msg: msgInvalidDate, err: err}
		}
		req.RequestedDate = date
	}

	requestedTime, err := types.NewTimeStringFromString(r.RequestedTime)
	if err != nil {
		return nil, &parseError{msg: msgInvalidTime, err: err}
	}
	req.RequestedTime = requestedTime

	if r.MoveInDate != nil && *r.MoveInDate != "" {
		moveIn, err := time.Parse(domain.DateFormat, *r.MoveInDate)
		if err != nil {
			return nil, &parseError{msg: msgInvalidMoveInDate, err: err}
		}
		req.MoveInDate = &moveIn
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createViewing.Response) *ViewingResponse {
	out := &ViewingResponse{
		ID:            resp.ID,
		AgencyID:      resp.AgencyID,
		AgentID:       resp.AgentID,
		PropertyID:    resp.PropertyID,
		PropertyTitle: resp.PropertyTitle,
		TenantName:    resp.TenantName,
		TenantEmail:   resp.TenantEmail,
		TenantPhone:   resp.TenantPhone,
		RequestedDate: resp.RequestedDate.Format(domain.DateFormat),
		RequestedTime: resp.RequestedTime.String(),
		Status:        resp.Status,
		Message:       resp.Message,
		Occupants:     resp.Occupants,
		RentBudget:    resp.RentBudget,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.MoveInDate != nil {
		moveIn := resp.MoveInDate.Format(domain.DateFormat)
		out.MoveInDate = &moveIn
	}
	return out
}
