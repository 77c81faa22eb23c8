package memory

import (
	"context"
	"sync"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// CalendarRepository is an in-memory implementation of
// repositories.CalendarRepository.
type CalendarRepository struct {
	mu     sync.RWMutex
	events map[string]*entities.CalendarEvent
}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{
		events: make(map[string]*entities.CalendarEvent),
	}
}

var _ repositories.CalendarRepository = (*CalendarRepository)(nil)

func (m *CalendarRepository) Create(ctx context.Context, event *entities.CalendarEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	eventCopy := *event
	m.events[event.ID] = &eventCopy
	return nil
}

func (m *CalendarRepository) GetAll(ctx context.Context) ([]*entities.CalendarEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*entities.CalendarEvent, 0, len(m.events))
	for _, event := range m.events {
		eventCopy := *event
		result = append(result, &eventCopy)
	}
	return result, nil
}

func (m *CalendarRepository) GetByID(ctx context.Context, id string) (*entities.CalendarEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	event, exists := m.events[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	eventCopy := *event
	return &eventCopy, nil
}

func (m *CalendarRepository) GetBySlot(ctx context.Context, local, date, excludeID string) (*entities.CalendarEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, event := range m.events {
		if event.ID == excludeID {
			continue
		}
		if event.Local == local && event.Date == date {
			eventCopy := *event
			return &eventCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *CalendarRepository) Update(ctx context.Context, event *entities.CalendarEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.events[event.ID]; !exists {
		return repositories.ErrNotFound
	}

	eventCopy := *event
	m.events[event.ID] = &eventCopy
	return nil
}

func (m *CalendarRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.events[id]; !exists {
		return repositories.ErrNotFound
	}

	delete(m.events, id)
	return nil
}
