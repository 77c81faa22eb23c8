package entities

import (
	"errors"
	"time"
)

// DefaultReservationStatus is assigned when a reservation request is created.
const DefaultReservationStatus = "Reservation requested"

// Reservation is a user's request for a spot in a calendar event. A user may
// hold at most one request per (CalendarID, Date) pair.
type Reservation struct {
	ID         string    `json:"id" db:"id"`
	Date       time.Time `json:"date" db:"date"`
	Status     string    `json:"status" db:"status"`
	CalendarID string    `json:"idCalendar" db:"id_calendar"`
	UserID     string    `json:"idUser" db:"id_user"`
}

func (r *Reservation) Validate() error {
	if r.Date.IsZero() {
		return errors.New("The date is mandatory")
	}
	if r.CalendarID == "" {
		return errors.New("The event is mandatory")
	}
	if r.UserID == "" {
		return errors.New("The user is mandatory")
	}
	return nil
}
