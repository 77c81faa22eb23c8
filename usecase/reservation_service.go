package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// ReservationService manages reservation requests against calendar events.
// The user id always comes from the authenticated token. A user may hold at
// most one request per (event, date) pair.
type ReservationService struct {
	reservations repositories.ReservationRepository
	users        repositories.UserRepository
	events       repositories.CalendarRepository
	logger       *zap.Logger
}

func NewReservationService(
	reservations repositories.ReservationRepository,
	users repositories.UserRepository,
	events repositories.CalendarRepository,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		users:        users,
		events:       events,
		logger:       logger,
	}
}

// ReservationInput carries the create/update form. CalendarID references
// the event by id; Status is only stored by updates.
type ReservationInput struct {
	Date       string
	CalendarID string
	Status     string
}

func (s *ReservationService) lookupUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ReservationService) lookupEvent(ctx context.Context, calendarID string) (*entities.CalendarEvent, error) {
	if calendarID == "" {
		return nil, reject("The event is mandatory")
	}
	event, err := s.events.GetByID(ctx, calendarID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Event not found")
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *ReservationService) List(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	if _, err := s.lookupUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.reservations.GetByUser(ctx, userID)
}

// Request creates a reservation request with the default status.
func (s *ReservationService) Request(ctx context.Context, userID string, in ReservationInput) (*entities.Reservation, error) {
	if _, err := s.lookupUser(ctx, userID); err != nil {
		return nil, err
	}

	event, err := s.lookupEvent(ctx, in.CalendarID)
	if err != nil {
		return nil, err
	}

	date, ok := parseISODate(in.Date)
	if in.Date == "" || !ok {
		return nil, reject("Incorrect date entered")
	}

	duplicates, err := s.reservations.CountDuplicates(ctx, userID, event.ID, date, "")
	if err != nil {
		return nil, err
	}
	if duplicates > 0 {
		return nil, rejectMsg("Request reservation registration already done")
	}

	reservation := &entities.Reservation{
		ID:         uuid.New().String(),
		Date:       date,
		Status:     entities.DefaultReservationStatus,
		CalendarID: event.ID,
		UserID:     userID,
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.logger.Info("reservation requested",
		zap.String("reservation_id", reservation.ID),
		zap.String("user_id", userID),
		zap.String("event_id", event.ID))
	return reservation, nil
}

// Update edits a request; the duplicate check excludes the request being
// edited. Returns the user and their refreshed request set.
func (s *ReservationService) Update(ctx context.Context, userID, reservationID string, in ReservationInput) (*entities.User, []*entities.Reservation, error) {
	if uuid.Validate(reservationID) != nil {
		return nil, nil, reject("Invalid id")
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	event, err := s.lookupEvent(ctx, in.CalendarID)
	if err != nil {
		return nil, nil, err
	}

	date, ok := parseISODate(in.Date)
	if in.Date == "" || !ok {
		return nil, nil, reject("Incorrect date entered")
	}

	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, reject("Request reservation not found")
	}
	if err != nil {
		return nil, nil, err
	}

	duplicates, err := s.reservations.CountDuplicates(ctx, userID, event.ID, date, reservationID)
	if err != nil {
		return nil, nil, err
	}
	if duplicates > 0 {
		return nil, nil, rejectMsg("Request reservation registration already done")
	}

	reservation.Date = date
	reservation.CalendarID = event.ID
	reservation.Status = in.Status

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, nil, err
	}

	reservations, err := s.reservations.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, reservations, nil
}

// Remove deletes a request and detaches it from the user's set. Returns the
// user and their remaining requests.
func (s *ReservationService) Remove(ctx context.Context, userID, reservationID string) (*entities.User, []*entities.Reservation, error) {
	if uuid.Validate(reservationID) != nil {
		return nil, nil, reject("Invalid id")
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.reservations.GetByID(ctx, reservationID); errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, reject("Request reservation not found")
	} else if err != nil {
		return nil, nil, err
	}

	if err := s.reservations.Delete(ctx, reservationID); err != nil {
		return nil, nil, err
	}

	reservations, err := s.reservations.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, reservations, nil
}
