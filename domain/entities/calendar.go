package entities

import "errors"

// Defaults applied when a calendar event is created without status or
// observation text.
const (
	DefaultEventStatus      = "Status not informed"
	DefaultEventObservation = "Observation not informed"
)

// CalendarEvent is a scheduled vaccination session. No two events may share
// the same (Local, Date) slot. Date keeps the ISO-8601 string the client
// sent; slot conflicts compare it verbatim.
type CalendarEvent struct {
	ID          string `json:"id" db:"id"`
	Local       string `json:"local" db:"local"`
	Date        string `json:"date" db:"date"`
	Places      int    `json:"places" db:"places"`
	Responsible string `json:"responsible" db:"responsible"`
	Status      string `json:"status" db:"status"`
	Observation string `json:"observation" db:"observation"`
	VaccineID   string `json:"idVaccine" db:"id_vaccine"`
}

func (e *CalendarEvent) Validate() error {
	if e.Local == "" {
		return errors.New("The local is mandatory")
	}
	if e.Date == "" {
		return errors.New("The date is mandatory")
	}
	if e.Places == 0 {
		return errors.New("The places is mandatory")
	}
	if e.Responsible == "" {
		return errors.New("The responsible is mandatory")
	}
	return nil
}
