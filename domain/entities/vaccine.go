package entities

import "errors"

// Vaccine is a catalog entry. Name is unique and is how calendar events and
// vaccination records reference it.
type Vaccine struct {
	ID               string `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	Type             string `json:"type" db:"type"`
	Manufacturer     string `json:"manufacturer" db:"manufacturer"`
	Description      string `json:"description" db:"description"`
	ContraIndication string `json:"contraIndication" db:"contra_indication"`
}

func (v *Vaccine) Validate() error {
	if v.Name == "" || v.Type == "" || v.Manufacturer == "" || v.Description == "" || v.ContraIndication == "" {
		return errors.New("All fields must be filled out")
	}
	return nil
}
