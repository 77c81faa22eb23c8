package entities

import (
	"errors"
	"time"
)

// VaccinationRecord links a user to a vaccine dose applied on a date.
type VaccinationRecord struct {
	ID              string    `json:"id" db:"id"`
	Date            time.Time `json:"date" db:"date"`
	QuantityApplied int       `json:"quantityApplied" db:"quantity_applied"`
	VaccineID       string    `json:"idVaccine" db:"id_vaccine"`
	UserID          string    `json:"idUser" db:"id_user"`
}

func (r *VaccinationRecord) Validate() error {
	if r.Date.IsZero() {
		return errors.New("The date is mandatory")
	}
	if r.VaccineID == "" {
		return errors.New("The vaccine is mandatory")
	}
	if r.UserID == "" {
		return errors.New("The user is mandatory")
	}
	return nil
}
