package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusApproved  RentalStatus = "approved"
	RentalStatusRejected  RentalStatus = "rejected"
	RentalStatusCompleted RentalStatus = "completed"
)

// AdminAssignableStatuses are the statuses an administrator may set directly.
// "pending" is only ever assigned at creation.
var AdminAssignableStatuses = []RentalStatus{
	RentalStatusApproved,
	RentalStatusRejected,
	RentalStatusCompleted,
}

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusApproved, RentalStatusRejected, RentalStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further tenant-driven transition may leave s.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusRejected || s == RentalStatusCompleted
}

// Rental is one reservation of a property by a user over a date range.
// Year is the calendar year of StartDate, fixed at creation and never
// recomputed; (PropertyID, UserID, Year) is unique across all rentals.
type Rental struct {
	ID              int32        `json:"id"`
	PropertyID      int32        `json:"property_id"`
	UserID          int32        `json:"user_id"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	Year            int          `json:"year"`
	Status          RentalStatus `json:"status"`
	BeforePictures  []string     `json:"before_pictures"`
	AfterPictures   []string     `json:"after_pictures"`
	ConditionReport string       `json:"condition_report,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
}
