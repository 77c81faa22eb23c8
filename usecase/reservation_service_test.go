package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/immunika/server/adapters/memory"
	"github.com/immunika/server/domain/entities"
)

type reservationFixture struct {
	service *ReservationService
	user    *entities.User
	event   *entities.CalendarEvent
	other   *entities.CalendarEvent
}

func newReservationFixture(t *testing.T) reservationFixture {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepository()
	events := memory.NewCalendarRepository()
	reservations := memory.NewReservationRepository()

	user := &entities.User{
		ID:        uuid.New().String(),
		Name:      "Maria",
		Password:  "hashed",
		Email:     "maria@example.com",
		Telefone:  "11999990000",
		Latitude:  -23.55,
		Longitude: -46.63,
		Image:     entities.DefaultUserImage,
	}
	require.NoError(t, users.Create(ctx, user))

	event := &entities.CalendarEvent{
		ID:          uuid.New().String(),
		Local:       "UBS Centro",
		Date:        "2026-09-10",
		Places:      50,
		Responsible: "Ana",
		Status:      entities.DefaultEventStatus,
		Observation: entities.DefaultEventObservation,
		VaccineID:   uuid.New().String(),
	}
	require.NoError(t, events.Create(ctx, event))

	other := &entities.CalendarEvent{
		ID:          uuid.New().String(),
		Local:       "UBS Norte",
		Date:        "2026-09-11",
		Places:      30,
		Responsible: "Ana",
		Status:      entities.DefaultEventStatus,
		Observation: entities.DefaultEventObservation,
		VaccineID:   uuid.New().String(),
	}
	require.NoError(t, events.Create(ctx, other))

	return reservationFixture{
		service: NewReservationService(reservations, users, events, zap.NewNop()),
		user:    user,
		event:   event,
		other:   other,
	}
}

func TestReservationRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a request with the default status", func(t *testing.T) {
		fx := newReservationFixture(t)

		reservation, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{
			Date:       "2026-09-10",
			CalendarID: fx.event.ID,
			Status:     "Confirmed",
		})
		require.NoError(t, err)

		assert.Equal(t, entities.DefaultReservationStatus, reservation.Status)
		assert.Equal(t, fx.event.ID, reservation.CalendarID)
		assert.Equal(t, fx.user.ID, reservation.UserID)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		fx := newReservationFixture(t)
		_, err := fx.service.Request(ctx, uuid.New().String(), ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		assertRejection(t, err, "error", "User not found")
	})

	t.Run("rejects a missing or unknown event", func(t *testing.T) {
		fx := newReservationFixture(t)

		_, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10"})
		assertRejection(t, err, "error", "The event is mandatory")

		_, err = fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: uuid.New().String()})
		assertRejection(t, err, "error", "Event not found")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		fx := newReservationFixture(t)
		_, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "10/09/2026", CalendarID: fx.event.ID})
		assertRejection(t, err, "error", "Incorrect date entered")
	})

	t.Run("rejects a duplicate request for the same event and date", func(t *testing.T) {
		fx := newReservationFixture(t)

		_, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		require.NoError(t, err)

		_, err = fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		assertRejection(t, err, "message", "Request reservation registration already done")
	})

	t.Run("another event on the same date is allowed", func(t *testing.T) {
		fx := newReservationFixture(t)

		_, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		require.NoError(t, err)

		_, err = fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.other.ID})
		assert.NoError(t, err)
	})
}

func TestReservationUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the request and stores the client status", func(t *testing.T) {
		fx := newReservationFixture(t)

		reservation, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		require.NoError(t, err)

		user, reservations, err := fx.service.Update(ctx, fx.user.ID, reservation.ID, ReservationInput{
			Date:       "2026-09-11",
			CalendarID: fx.other.ID,
			Status:     "Confirmed",
		})
		require.NoError(t, err)

		assert.Equal(t, fx.user.ID, user.ID)
		require.Len(t, reservations, 1)
		assert.Equal(t, fx.other.ID, reservations[0].CalendarID)
		assert.Equal(t, "Confirmed", reservations[0].Status)
	})

	t.Run("keeping your own pair is not a duplicate", func(t *testing.T) {
		fx := newReservationFixture(t)

		reservation, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		require.NoError(t, err)

		_, _, err = fx.service.Update(ctx, fx.user.ID, reservation.ID, ReservationInput{
			Date:       "2026-09-10",
			CalendarID: fx.event.ID,
			Status:     "Confirmed",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects moving onto another request's pair", func(t *testing.T) {
		fx := newReservationFixture(t)

		_, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		require.NoError(t, err)
		reservation, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-11", CalendarID: fx.other.ID})
		require.NoError(t, err)

		_, _, err = fx.service.Update(ctx, fx.user.ID, reservation.ID, ReservationInput{
			Date:       "2026-09-10",
			CalendarID: fx.event.ID,
		})
		assertRejection(t, err, "message", "Request reservation registration already done")
	})

	t.Run("rejects a malformed id before any lookup", func(t *testing.T) {
		fx := newReservationFixture(t)
		_, _, err := fx.service.Update(ctx, fx.user.ID, "not-a-uuid", ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		assertRejection(t, err, "error", "Invalid id")
	})

	t.Run("rejects an unknown request", func(t *testing.T) {
		fx := newReservationFixture(t)
		_, _, err := fx.service.Update(ctx, fx.user.ID, uuid.New().String(), ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		assertRejection(t, err, "error", "Request reservation not found")
	})
}

func TestReservationRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the request and returns the remainder", func(t *testing.T) {
		fx := newReservationFixture(t)

		reservation, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-10", CalendarID: fx.event.ID})
		require.NoError(t, err)
		kept, err := fx.service.Request(ctx, fx.user.ID, ReservationInput{Date: "2026-09-11", CalendarID: fx.other.ID})
		require.NoError(t, err)

		user, reservations, err := fx.service.Remove(ctx, fx.user.ID, reservation.ID)
		require.NoError(t, err)

		assert.Equal(t, fx.user.ID, user.ID)
		require.Len(t, reservations, 1)
		assert.Equal(t, kept.ID, reservations[0].ID)
	})

	t.Run("rejects a malformed id before any lookup", func(t *testing.T) {
		fx := newReservationFixture(t)
		_, _, err := fx.service.Remove(ctx, fx.user.ID, "not-a-uuid")
		assertRejection(t, err, "error", "Invalid id")
	})

	t.Run("rejects an unknown request", func(t *testing.T) {
		fx := newReservationFixture(t)
		_, _, err := fx.service.Remove(ctx, fx.user.ID, uuid.New().String())
		assertRejection(t, err, "error", "Request reservation not found")
	})
}
