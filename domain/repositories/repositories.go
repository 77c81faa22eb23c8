package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/immunika/server/domain/entities"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// UserRepository defines data access methods for users
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetAll(ctx context.Context) ([]*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByTelefone(ctx context.Context, telefone string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
}

// VaccineRepository defines data access methods for the vaccine catalog
type VaccineRepository interface {
	Create(ctx context.Context, vaccine *entities.Vaccine) error
	GetAll(ctx context.Context) ([]*entities.Vaccine, error)
	GetByID(ctx context.Context, id string) (*entities.Vaccine, error)
	GetByName(ctx context.Context, name string) (*entities.Vaccine, error)
	Update(ctx context.Context, vaccine *entities.Vaccine) error
	Delete(ctx context.Context, id string) error
}

// CalendarRepository defines data access methods for calendar events
type CalendarRepository interface {
	Create(ctx context.Context, event *entities.CalendarEvent) error
	GetAll(ctx context.Context) ([]*entities.CalendarEvent, error)
	GetByID(ctx context.Context, id string) (*entities.CalendarEvent, error)
	// GetBySlot returns the event occupying (local, date). A non-empty
	// excludeID leaves that event out of the search, which is how updates
	// avoid colliding with themselves.
	GetBySlot(ctx context.Context, local, date, excludeID string) (*entities.CalendarEvent, error)
	Update(ctx context.Context, event *entities.CalendarEvent) error
	Delete(ctx context.Context, id string) error
}

// VaccinationRepository defines data access methods for vaccination records
type VaccinationRepository interface {
	Create(ctx context.Context, record *entities.VaccinationRecord) error
	GetByID(ctx context.Context, id string) (*entities.VaccinationRecord, error)
	GetByUser(ctx context.Context, userID string) ([]*entities.VaccinationRecord, error)
	// CountByUserAndVaccine counts the user's records referencing the vaccine.
	CountByUserAndVaccine(ctx context.Context, userID, vaccineID string) (int, error)
	// CountDuplicates counts the user's records matching (vaccineID, date),
	// excluding the record identified by excludeID when non-empty.
	CountDuplicates(ctx context.Context, userID, vaccineID string, date time.Time, excludeID string) (int, error)
	Update(ctx context.Context, record *entities.VaccinationRecord) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository defines data access methods for reservation requests
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entities.Reservation) error
	GetByID(ctx context.Context, id string) (*entities.Reservation, error)
	GetByUser(ctx context.Context, userID string) ([]*entities.Reservation, error)
	// CountDuplicates counts the user's requests matching (calendarID, date),
	// excluding the request identified by excludeID when non-empty.
	CountDuplicates(ctx context.Context, userID, calendarID string, date time.Time, excludeID string) (int, error)
	Update(ctx context.Context, reservation *entities.Reservation) error
	Delete(ctx context.Context, id string) error
}
