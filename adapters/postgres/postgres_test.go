package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// Integration tests against a migrated database. Run cmd/migrate up first.
func openTestDB(t *testing.T) *testDB {
	t.Helper()
	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres integration")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &testDB{
		users:    NewUserRepository(db, zap.NewNop()),
		vaccines: NewVaccineRepository(db, zap.NewNop()),
	}
}

type testDB struct {
	users    *UserRepository
	vaccines *VaccineRepository
}

func TestIntegrationUserRepository(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	user := &entities.User{
		ID:        uuid.New().String(),
		Name:      "Integration",
		Password:  "hashed",
		Email:     "it-" + suffix + "@example.com",
		Telefone:  "it-" + suffix,
		Latitude:  -23.55,
		Longitude: -46.63,
		Image:     entities.DefaultUserImage,
	}
	require.NoError(t, repos.users.Create(ctx, user))
	t.Cleanup(func() { _ = repos.users.Delete(ctx, user.ID) })

	t.Run("lookups find the row", func(t *testing.T) {
		got, err := repos.users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)

		got, err = repos.users.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		got, err = repos.users.GetByTelefone(ctx, user.Telefone)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("update round trips", func(t *testing.T) {
		user.Name = "Integration Updated"
		require.NoError(t, repos.users.Update(ctx, user))

		got, err := repos.users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Integration Updated", got.Name)
	})

	t.Run("absent rows report ErrNotFound", func(t *testing.T) {
		_, err := repos.users.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestIntegrationVaccineRepository(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	vaccine := &entities.Vaccine{
		ID:               uuid.New().String(),
		Name:             "it-vaccine-" + time.Now().Format("150405.000000000"),
		Type:             "Inactivated virus",
		Manufacturer:     "Sinovac",
		Description:      "Integration fixture",
		ContraIndication: "None",
	}
	require.NoError(t, repos.vaccines.Create(ctx, vaccine))
	t.Cleanup(func() { _ = repos.vaccines.Delete(ctx, vaccine.ID) })

	got, err := repos.vaccines.GetByName(ctx, vaccine.Name)
	require.NoError(t, err)
	assert.Equal(t, vaccine.ID, got.ID)

	_, err = repos.vaccines.GetByName(ctx, "no-such-vaccine")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
