package postgres

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// CalendarRepository implements repositories.CalendarRepository on PostgreSQL.
type CalendarRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewCalendarRepository(db *sql.DB, logger *zap.Logger) *CalendarRepository {
	return &CalendarRepository{db: db, logger: logger}
}

var _ repositories.CalendarRepository = (*CalendarRepository)(nil)

const calendarColumns = `id, local, date, places, responsible, status, observation, id_vaccine`

func (r *CalendarRepository) Create(ctx context.Context, event *entities.CalendarEvent) error {
	query := `
		INSERT INTO vaccination_calendars (id, local, date, places, responsible, status, observation, id_vaccine)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Local, event.Date, event.Places,
		event.Responsible, event.Status, event.Observation, event.VaccineID,
	)
	if err != nil {
		r.logger.Error("failed to create calendar event", zap.Error(err), zap.String("event_id", event.ID))
		return err
	}
	return nil
}

func (r *CalendarRepository) GetAll(ctx context.Context) ([]*entities.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+calendarColumns+` FROM vaccination_calendars`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*entities.CalendarEvent
	for rows.Next() {
		event, err := scanCalendarEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *CalendarRepository) GetByID(ctx context.Context, id string) (*entities.CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+calendarColumns+` FROM vaccination_calendars WHERE id = $1`, id)
	return scanCalendarEvent(row)
}

func (r *CalendarRepository) GetBySlot(ctx context.Context, local, date, excludeID string) (*entities.CalendarEvent, error) {
	query := `SELECT ` + calendarColumns + ` FROM vaccination_calendars WHERE local = $1 AND date = $2`
	args := []any{local, date}
	if excludeID != "" {
		query += ` AND id <> $3`
		args = append(args, excludeID)
	}
	query += ` LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, args...)
	return scanCalendarEvent(row)
}

func (r *CalendarRepository) Update(ctx context.Context, event *entities.CalendarEvent) error {
	query := `
		UPDATE vaccination_calendars
		SET local = $2, date = $3, places = $4, responsible = $5,
		    status = $6, observation = $7, id_vaccine = $8
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		event.ID, event.Local, event.Date, event.Places,
		event.Responsible, event.Status, event.Observation, event.VaccineID,
	)
	if err != nil {
		r.logger.Error("failed to update calendar event", zap.Error(err), zap.String("event_id", event.ID))
		return err
	}
	return checkAffected(result)
}

func (r *CalendarRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vaccination_calendars WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete calendar event", zap.Error(err), zap.String("event_id", id))
		return err
	}
	return checkAffected(result)
}

func scanCalendarEvent(row rowScanner) (*entities.CalendarEvent, error) {
	var event entities.CalendarEvent
	err := row.Scan(
		&event.ID, &event.Local, &event.Date, &event.Places,
		&event.Responsible, &event.Status, &event.Observation, &event.VaccineID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
