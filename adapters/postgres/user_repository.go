package postgres

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// UserRepository implements repositories.UserRepository on PostgreSQL.
type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewUserRepository(db *sql.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

const userColumns = `id, name, password, email, telefone, latitude, longitude, image`

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (id, name, password, email, telefone, latitude, longitude, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Password, user.Email,
		user.Telefone, user.Latitude, user.Longitude, user.Image,
	)
	if err != nil {
		r.logger.Error("failed to create user", zap.Error(err), zap.String("user_id", user.ID))
		return err
	}
	return nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByTelefone(ctx context.Context, telefone string) (*entities.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE telefone = $1`, telefone)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	query := `
		UPDATE users
		SET name = $2, password = $3, email = $4, telefone = $5,
		    latitude = $6, longitude = $7, image = $8
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Password, user.Email,
		user.Telefone, user.Latitude, user.Longitude, user.Image,
	)
	if err != nil {
		r.logger.Error("failed to update user", zap.Error(err), zap.String("user_id", user.ID))
		return err
	}
	return checkAffected(result)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete user", zap.Error(err), zap.String("user_id", id))
		return err
	}
	return checkAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Password, &user.Email,
		&user.Telefone, &user.Latitude, &user.Longitude, &user.Image,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
