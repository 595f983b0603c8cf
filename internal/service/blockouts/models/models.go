package models

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
)

// CreateBlockoutRequest запрос на создание блокировки
// Для fullDay время не указывается, иначе обязательны оба поля
type CreateBlockoutRequest struct {
	Date      string  `json:"date"` // "2025-10-15"
	FullDay   bool    `json:"fullDay"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// BlockoutResponse ответ с данными блокировки
type BlockoutResponse struct {
	ID        int64     `json:"id"`
	AgencyID  int64     `json:"agencyId"`
	Date      string    `json:"date"`
	FullDay   bool      `json:"fullDay"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockoutListResponse ответ со списком блокировок
type BlockoutListResponse struct {
	Blockouts []BlockoutResponse `json:"blockouts"`
}

// FromDomainBlockout конвертирует domain модель в DTO
func FromDomainBlockout(b *domain.Blockout) *BlockoutResponse {
	resp := &BlockoutResponse{
		ID:        b.ID,
		AgencyID:  b.AgencyID,
		Date:      b.Date.Format(domain.DateFormat),
		FullDay:   b.FullDay,
		CreatedAt: b.CreatedAt,
	}
	if b.StartTime != nil {
		start := b.StartTime.String()
		resp.StartTime = &start
	}
	if b.EndTime != nil {
		end := b.EndTime.String()
		resp.EndTime = &end
	}
	return resp
}

// FromDomainBlockoutList конвертирует список domain моделей в DTO
func FromDomainBlockoutList(blockouts []domain.Blockout) *BlockoutListResponse {
	resp := &BlockoutListResponse{
		Blockouts: make([]BlockoutResponse, 0, len(blockouts)),
	}
	for i := range blockouts {
		resp.Blockouts = append(resp.Blockouts, *FromDomainBlockout(&blockouts[i]))
	}
	return resp
}
