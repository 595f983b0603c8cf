package get_viewing_feasibility

import (
	checkFeasibility "github.com/m04kA/SMC-ViewingService/internal/usecase/check_viewing_feasibility"
)

// FeasibilityResponse HTTP response model
type FeasibilityResponse struct {
	ViewingID     int64   `json:"viewingId"`
	Status        string  `json:"status"`
	Label         string  `json:"label"`
	Color         string  `json:"color"`
	Reason        *string `json:"reason,omitempty"`
	TravelMinutes *int    `json:"travelMinutes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkFeasibility.Response) *FeasibilityResponse {
	return &FeasibilityResponse{
		ViewingID:     resp.ViewingID,
		Status:        string(resp.Status),
		Label:         resp.Label,
		Color:         resp.Color,
		Reason:        resp.Reason,
		TravelMinutes: resp.TravelMinutes,
	}
}
