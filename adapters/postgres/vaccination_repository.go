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

// VaccinationRepository implements repositories.VaccinationRepository on
// PostgreSQL.
type VaccinationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewVaccinationRepository(db *sql.DB, logger *zap.Logger) *VaccinationRepository {
	return &VaccinationRepository{db: db, logger: logger}
}

var _ repositories.VaccinationRepository = (*VaccinationRepository)(nil)

const vaccinationColumns = `id, date, quantity_applied, id_vaccine, id_user`

func (r *VaccinationRepository) Create(ctx context.Context, record *entities.VaccinationRecord) error {
	query := `
		INSERT INTO vaccinations (id, date, quantity_applied, id_vaccine, id_user)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Date, record.QuantityApplied, record.VaccineID, record.UserID,
	)
	if err != nil {
		r.logger.Error("failed to create vaccination record", zap.Error(err), zap.String("record_id", record.ID))
		return err
	}
	return nil
}

func (r *VaccinationRepository) GetByID(ctx context.Context, id string) (*entities.VaccinationRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vaccinationColumns+` FROM vaccinations WHERE id = $1`, id)
	return scanVaccinationRecord(row)
}

func (r *VaccinationRepository) GetByUser(ctx context.Context, userID string) ([]*entities.VaccinationRecord, error) {
	query := `SELECT ` + vaccinationColumns + ` FROM vaccinations WHERE id_user = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*entities.VaccinationRecord{}
	for rows.Next() {
		record, err := scanVaccinationRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *VaccinationRepository) CountByUserAndVaccine(ctx context.Context, userID, vaccineID string) (int, error) {
	query := `SELECT COUNT(*) FROM vaccinations WHERE id_user = $1 AND id_vaccine = $2`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, vaccineID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VaccinationRepository) CountDuplicates(ctx context.Context, userID, vaccineID string, date time.Time, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM vaccinations WHERE id_user = $1 AND id_vaccine = $2 AND date = $3`
	args := []any{userID, vaccineID, date}
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

func (r *VaccinationRepository) Update(ctx context.Context, record *entities.VaccinationRecord) error {
	query := `
		UPDATE vaccinations
		SET date = $2, quantity_applied = $3, id_vaccine = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		record.ID, record.Date, record.QuantityApplied, record.VaccineID,
	)
	if err != nil {
		r.logger.Error("failed to update vaccination record", zap.Error(err), zap.String("record_id", record.ID))
		return err
	}
	return checkAffected(result)
}

func (r *VaccinationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete vaccination record", zap.Error(err), zap.String("record_id", id))
		return err
	}
	return checkAffected(result)
}

func scanVaccinationRecord(row rowScanner) (*entities.VaccinationRecord, error) {
	var record entities.VaccinationRecord
	err := row.Scan(
		&record.ID, &record.Date, &record.QuantityApplied, &record.VaccineID, &record.UserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
