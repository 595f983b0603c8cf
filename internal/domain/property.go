package domain

import "time"

// Property represents a listed property that tenants can request to view
type Property struct {
	ID       int64
	AgencyID int64
	AgentID  int64 // agent who runs the viewings
	Title    string
	Address  string
	Postcode string
	Status   string

	// AgencyBasePostcode agency office, used as the fallback when geocoding the property
	AgencyBasePostcode string

	CreatedAt time.Time
	UpdatedAt time.Time
}
