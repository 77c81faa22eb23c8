package memory

import (
	"context"
	"sync"
	"time"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// VaccinationRepository is an in-memory implementation of
// repositories.VaccinationRepository.
type VaccinationRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.VaccinationRecord
}

func NewVaccinationRepository() *VaccinationRepository {
	return &VaccinationRepository{
		records: make(map[string]*entities.VaccinationRecord),
	}
}

var _ repositories.VaccinationRepository = (*VaccinationRepository)(nil)

func (m *VaccinationRepository) Create(ctx context.Context, record *entities.VaccinationRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recordCopy := *record
	m.records[record.ID] = &recordCopy
	return nil
}

func (m *VaccinationRepository) GetByID(ctx context.Context, id string) (*entities.VaccinationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	recordCopy := *record
	return &recordCopy, nil
}

func (m *VaccinationRepository) GetByUser(ctx context.Context, userID string) ([]*entities.VaccinationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*entities.VaccinationRecord{}
	for _, record := range m.records {
		if record.UserID == userID {
			recordCopy := *record
			result = append(result, &recordCopy)
		}
	}
	return result, nil
}

func (m *VaccinationRepository) CountByUserAndVaccine(ctx context.Context, userID, vaccineID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, record := range m.records {
		if record.UserID == userID && record.VaccineID == vaccineID {
			count++
		}
	}
	return count, nil
}

func (m *VaccinationRepository) CountDuplicates(ctx context.Context, userID, vaccineID string, date time.Time, excludeID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, record := range m.records {
		if record.ID == excludeID {
			continue
		}
		if record.UserID == userID && record.VaccineID == vaccineID && record.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (m *VaccinationRepository) Update(ctx context.Context, record *entities.VaccinationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; !exists {
		return repositories.ErrNotFound
	}

	recordCopy := *record
	m.records[record.ID] = &recordCopy
	return nil
}

func (m *VaccinationRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(m.records, id)
	return nil
}
