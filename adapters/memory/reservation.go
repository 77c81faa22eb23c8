package memory

import (
	"context"
	"sync"
	"time"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// ReservationRepository is an in-memory implementation of
// repositories.ReservationRepository.
type ReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]*entities.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		reservations: make(map[string]*entities.Reservation),
	}
}

var _ repositories.ReservationRepository = (*ReservationRepository)(nil)

func (m *ReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reservationCopy := *reservation
	m.reservations[reservation.ID] = &reservationCopy
	return nil
}

func (m *ReservationRepository) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reservation, exists := m.reservations[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	reservationCopy := *reservation
	return &reservationCopy, nil
}

func (m *ReservationRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*entities.Reservation{}
	for _, reservation := range m.reservations {
		if reservation.UserID == userID {
			reservationCopy := *reservation
			result = append(result, &reservationCopy)
		}
	}
	return result, nil
}

func (m *ReservationRepository) CountDuplicates(ctx context.Context, userID, calendarID string, date time.Time, excludeID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, reservation := range m.reservations {
		if reservation.ID == excludeID {
			continue
		}
		if reservation.UserID == userID && reservation.CalendarID == calendarID && reservation.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (m *ReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reservations[reservation.ID]; !exists {
		return repositories.ErrNotFound
	}

	reservationCopy := *reservation
	m.reservations[reservation.ID] = &reservationCopy
	return nil
}

func (m *ReservationRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reservations[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(m.reservations, id)
	return nil
}
