package postgres

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// VaccineRepository implements repositories.VaccineRepository on PostgreSQL.
type VaccineRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewVaccineRepository(db *sql.DB, logger *zap.Logger) *VaccineRepository {
	return &VaccineRepository{db: db, logger: logger}
}

var _ repositories.VaccineRepository = (*VaccineRepository)(nil)

const vaccineColumns = `id, name, type, manufacturer, description, contra_indication`

func (r *VaccineRepository) Create(ctx context.Context, vaccine *entities.Vaccine) error {
	query := `
		INSERT INTO vaccines (id, name, type, manufacturer, description, contra_indication)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		vaccine.ID, vaccine.Name, vaccine.Type,
		vaccine.Manufacturer, vaccine.Description, vaccine.ContraIndication,
	)
	if err != nil {
		r.logger.Error("failed to create vaccine", zap.Error(err), zap.String("vaccine_id", vaccine.ID))
		return err
	}
	return nil
}

func (r *VaccineRepository) GetAll(ctx context.Context) ([]*entities.Vaccine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vaccineColumns+` FROM vaccines`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vaccines []*entities.Vaccine
	for rows.Next() {
		vaccine, err := scanVaccine(rows)
		if err != nil {
			return nil, err
		}
		vaccines = append(vaccines, vaccine)
	}
	return vaccines, rows.Err()
}

func (r *VaccineRepository) GetByID(ctx context.Context, id string) (*entities.Vaccine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vaccineColumns+` FROM vaccines WHERE id = $1`, id)
	return scanVaccine(row)
}

func (r *VaccineRepository) GetByName(ctx context.Context, name string) (*entities.Vaccine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vaccineColumns+` FROM vaccines WHERE name = $1`, name)
	return scanVaccine(row)
}

func (r *VaccineRepository) Update(ctx context.Context, vaccine *entities.Vaccine) error {
	query := `
		UPDATE vaccines
		SET name = $2, type = $3, manufacturer = $4, description = $5, contra_indication = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		vaccine.ID, vaccine.Name, vaccine.Type,
		vaccine.Manufacturer, vaccine.Description, vaccine.ContraIndication,
	)
	if err != nil {
		r.logger.Error("failed to update vaccine", zap.Error(err), zap.String("vaccine_id", vaccine.ID))
		return err
	}
	return checkAffected(result)
}

func (r *VaccineRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vaccines WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete vaccine", zap.Error(err), zap.String("vaccine_id", id))
		return err
	}
	return checkAffected(result)
}

func scanVaccine(row rowScanner) (*entities.Vaccine, error) {
	var vaccine entities.Vaccine
	err := row.Scan(
		&vaccine.ID, &vaccine.Name, &vaccine.Type,
		&vaccine.Manufacturer, &vaccine.Description, &vaccine.ContraIndication,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vaccine, nil
}
