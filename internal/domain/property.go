package domain

import "time"

// RentalInterval is one entry of a property's rental history. The history is
// appended when a rental is created, in the same database transaction as the
// rental row itself.
type RentalInterval struct {
	UserID    int32     `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type Property struct {
	ID          int32    `json:"id"`
	OwnerID     int32    `json:"owner_id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Rent        string   `json:"rent"`
	Bed         string   `json:"bed"`
	Bath        string   `json:"bath"`
	Sqft        string   `json:"sqft"`
	Furnishing  string   `json:"furnishing"`
	Map         string   `json:"map"`
	Images      []string `json:"images"`
	AmenityIDs  []int32  `json:"amenity_ids"`

	RentalHistory []RentalInterval `json:"rental_history,omitempty"`
}

// OccupiedAt is the raw interval-membership predicate over a recorded
// history: true iff at falls inside any [start, end] interval, endpoints
// inclusive. Callers decide which rentals contribute intervals; the booking
// workflow only counts approved and completed ones.
func OccupiedAt(history []RentalInterval, at time.Time) bool {
	for _, iv := range history {
		if !at.Before(iv.StartDate) && !at.After(iv.EndDate) {
			return true
		}
	}
	return false
}
