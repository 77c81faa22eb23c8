package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// ReservationRepository implements repositories.ReservationRepository on
// PostgreSQL.
type ReservationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewReservationRepository(db *sql.DB, logger *zap.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger}
}

var _ repositories.ReservationRepository = (*ReservationRepository)(nil)

const reservationColumns = `id, date, status, id_calendar, id_user`

func (r *ReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	query := `
		INSERT INTO request_reservations (id, date, status, id_calendar, id_user)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		reservation.ID, reservation.Date, reservation.Status,
		reservation.CalendarID, reservation.UserID,
	)
	if err != nil {
		r.logger.Error("failed to create reservation", zap.Error(err), zap.String("reservation_id", reservation.ID))
		return err
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM request_reservations WHERE id = $1`, id)
	return scanReservation(row)
}

func (r *ReservationRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM request_reservations WHERE id_user = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []*entities.Reservation{}
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) CountDuplicates(ctx context.Context, userID, calendarID string, date time.Time, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM request_reservations WHERE id_user = $1 AND id_calendar = $2 AND date = $3`
	args := []any{userID, calendarID, date}
	if excludeID != "" {
		query += ` AND id <> $4`
		args = append(args, excludeID)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	query := `
		UPDATE request_reservations
		SET date = $2, status = $3, id_calendar = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		reservation.ID, reservation.Date, reservation.Status, reservation.CalendarID,
	)
	if err != nil {
		r.logger.Error("failed to update reservation", zap.Error(err), zap.String("reservation_id", reservation.ID))
		return err
	}
	return checkAffected(result)
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM request_reservations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete reservation", zap.Error(err), zap.String("reservation_id", id))
		return err
	}
	return checkAffected(result)
}

func scanReservation(row rowScanner) (*entities.Reservation, error) {
	var reservation entities.Reservation
	err := row.Scan(
		&reservation.ID, &reservation.Date, &reservation.Status,
		&reservation.CalendarID, &reservation.UserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}
