package domain

import (
	"time"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// ViewingStatus represents the status of a viewing request
type ViewingStatus string

const (
	StatusPending   ViewingStatus = "pending"
	StatusConfirmed ViewingStatus = "confirmed"
	StatusDeclined  ViewingStatus = "declined"
)

// IsValid returns true for known statuses
func (s ViewingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

// Viewing represents a tenant's request to view a property
type Viewing struct {
	ID         int64
	AgencyID   int64
	AgentID    int64
	PropertyID int64

	// Denormalized from properties
	PropertyTitle    string
	PropertyPostcode string

	TenantName  string
	TenantEmail string
	TenantPhone string

	RequestedDate time.Time
	RequestedTime types.TimeString
	ConfirmedTime *types.TimeString // set on confirmation
	SuggestedTime *types.TimeString // alternative time proposed by the agent

	Status  ViewingStatus
	Message *string

	// Tenant smart profile
	MoveInDate *time.Time
	Occupants  *int
	RentBudget *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveTime returns the confirmed time if set, otherwise the requested time
func (v *Viewing) EffectiveTime() types.TimeString {
	if v.ConfirmedTime != nil && !v.ConfirmedTime.IsZero() {
		return *v.ConfirmedTime
	}
	return v.RequestedTime
}

// IsConfirmed returns true if the viewing occupies the agent's itinerary
func (v *Viewing) IsConfirmed() bool {
	return v.Status == StatusConfirmed
}
