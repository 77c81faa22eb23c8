package api

import "github.com/immunika/server/domain/entities"

// Request types for API endpoints. Field names mirror the JSON the web
// client sends.

type RegisterUserRequest struct {
	Name            string  `json:"name"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	Email           string  `json:"email"`
	Telefone        string  `json:"telefone"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

type AuthenticateRequest struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Email           string `json:"email"`
}

type VaccineRequest struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Manufacturer     string `json:"manufacturer"`
	Description      string `json:"description"`
	ContraIndication string `json:"contraIndication"`
}

// CalendarRequest references the vaccine by name; status and observation are
// only honored on updates.
type CalendarRequest struct {
	Local       string `json:"local"`
	Date        string `json:"date"`
	Places      int    `json:"places"`
	Status      string `json:"status"`
	Observation string `json:"observation"`
	Responsible string `json:"responsible"`
	Vaccine     string `json:"vaccine"`
}

type VaccinationRequest struct {
	Date    string `json:"date"`
	Applied int    `json:"applied"`
	Vaccine string `json:"vaccine"`
}

type ReservationRequest struct {
	Date       string `json:"date"`
	CalendarID string `json:"idCalendar"`
	Status     string `json:"status"`
}

// userWithVaccinations is the update/remove response body: the account plus
// its refreshed record set.
type userWithVaccinations struct {
	*entities.User
	Vaccinations []*entities.VaccinationRecord `json:"vaccinations"`
}

type userWithReservations struct {
	*entities.User
	Reservations []*entities.Reservation `json:"reservations"`
}
