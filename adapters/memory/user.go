package memory

import (
	"context"
	"sync"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// UserRepository is an in-memory implementation of repositories.UserRepository.
// It backs unit tests and small single-process deployments.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*entities.User),
	}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userCopy := *user
	m.users[user.ID] = &userCopy
	return nil
}

func (m *UserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*entities.User, 0, len(m.users))
	for _, user := range m.users {
		userCopy := *user
		result = append(result, &userCopy)
	}
	return result, nil
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	userCopy := *user
	return &userCopy, nil
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) GetByTelefone(ctx context.Context, telefone string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Telefone == telefone {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) Update(ctx context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}

	userCopy := *user
	m.users[user.ID] = &userCopy
	return nil
}

func (m *UserRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(m.users, id)
	return nil
}
