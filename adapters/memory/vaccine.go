package memory

import (
	"context"
	"sync"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// VaccineRepository is an in-memory implementation of
// repositories.VaccineRepository.
type VaccineRepository struct {
	mu       sync.RWMutex
	vaccines map[string]*entities.Vaccine
}

func NewVaccineRepository() *VaccineRepository {
	return &VaccineRepository{
		vaccines: make(map[string]*entities.Vaccine),
	}
}

var _ repositories.VaccineRepository = (*VaccineRepository)(nil)

func (m *VaccineRepository) Create(ctx context.Context, vaccine *entities.Vaccine) error {
	if err := vaccine.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	vaccineCopy := *vaccine
	m.vaccines[vaccine.ID] = &vaccineCopy
	return nil
}

func (m *VaccineRepository) GetAll(ctx context.Context) ([]*entities.Vaccine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*entities.Vaccine, 0, len(m.vaccines))
	for _, vaccine := range m.vaccines {
		vaccineCopy := *vaccine
		result = append(result, &vaccineCopy)
	}
	return result, nil
}

func (m *VaccineRepository) GetByID(ctx context.Context, id string) (*entities.Vaccine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vaccine, exists := m.vaccines[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	vaccineCopy := *vaccine
	return &vaccineCopy, nil
}

func (m *VaccineRepository) GetByName(ctx context.Context, name string) (*entities.Vaccine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, vaccine := range m.vaccines {
		if vaccine.Name == name {
			vaccineCopy := *vaccine
			return &vaccineCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *VaccineRepository) Update(ctx context.Context, vaccine *entities.Vaccine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.vaccines[vaccine.ID]; !exists {
		return repositories.ErrNotFound
	}

	vaccineCopy := *vaccine
	m.vaccines[vaccine.ID] = &vaccineCopy
	return nil
}

func (m *VaccineRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.vaccines[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(m.vaccines, id)
	return nil
}
