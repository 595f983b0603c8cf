package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid viewing status")
)

// Request модели

// UpdateStatusRequest запрос на изменение статуса показа
type UpdateStatusRequest struct {
	Status        string  `json:"status"`
	SuggestedTime *string `json:"suggestedTime,omitempty"` // альтернативное время, "HH:MM"
}

// Response модели

// ViewingResponse ответ с данными показа
type ViewingResponse struct {
	ID               int64   `json:"id"`
	AgencyID         int64   `json:"agencyId"`
	AgentID          int64   `json:"agentId"`
	PropertyID       int64   `json:"propertyId"`
	PropertyTitle    string  `json:"propertyTitle"`
	PropertyPostcode string  `json:"propertyPostcode"`
	TenantName       string  `json:"tenantName"`
	TenantEmail      string  `json:"tenantEmail"`
	TenantPhone      string  `json:"tenantPhone"`
	RequestedDate    string  `json:"requestedDate"` // "2025-10-15"
	RequestedTime    string  `json:"requestedTime"` // "10:00"
	ConfirmedTime    *string `json:"confirmedTime,omitempty"`
	SuggestedTime    *string `json:"suggestedTime,omitempty"`
	Status           string  `json:"status"`
	Message          *string `json:"message,omitempty"`

	// Smart Profile
	MoveInDate *string  `json:"moveInDate,omitempty"`
	Occupants  *int     `json:"occupants,omitempty"`
	RentBudget *float64 `json:"rentBudget,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ViewingListResponse ответ со списком показов
type ViewingListResponse struct {
	Viewings []ViewingResponse `json:"viewings"`
}

// Методы конвертации

// FromDomainViewing конвертирует domain модель в DTO
func FromDomainViewing(v *domain.Viewing) *ViewingResponse {
	if v == nil {
		return nil
	}

	resp := &ViewingResponse{
		ID:               v.ID,
		AgencyID:         v.AgencyID,
		AgentID:          v.AgentID,
		PropertyID:       v.PropertyID,
		PropertyTitle:    v.PropertyTitle,
		PropertyPostcode: v.PropertyPostcode,
		TenantName:       v.TenantName,
		TenantEmail:      v.TenantEmail,
		TenantPhone:      v.TenantPhone,
		RequestedDate:    v.RequestedDate.Format(domain.DateFormat),
		RequestedTime:    v.RequestedTime.String(),
		ConfirmedTime:    timeStringPtr(v.ConfirmedTime),
		SuggestedTime:    timeStringPtr(v.SuggestedTime),
		Status:           string(v.Status),
		Message:          v.Message,
		Occupants:        v.Occupants,
		RentBudget:       v.RentBudget,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}

	if v.MoveInDate != nil {
		moveIn := v.MoveInDate.Format(domain.DateFormat)
		resp.MoveInDate = &moveIn
	}

	return resp
}

// FromDomainViewingList конвертирует список domain моделей в DTO
func FromDomainViewingList(viewings []*domain.Viewing) *ViewingListResponse {
	resp := &ViewingListResponse{
		Viewings: make([]ViewingResponse, 0, len(viewings)),
	}

	for _, viewing := range viewings {
		if viewingResp := FromDomainViewing(viewing); viewingResp != nil {
			resp.Viewings = append(resp.Viewings, *viewingResp)
		}
	}

	return resp
}

// ToDomainViewingStatus конвертирует строку в domain.ViewingStatus с валидацией
func ToDomainViewingStatus(status string) (domain.ViewingStatus, error) {
	s := domain.ViewingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func timeStringPtr(t *types.TimeString) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}
