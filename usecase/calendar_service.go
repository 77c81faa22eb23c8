package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// CalendarService schedules vaccination events. Each (local, date) slot is
// held by at most one event; the referenced vaccine is resolved by its
// unique name and stored by id.
type CalendarService struct {
	events   repositories.CalendarRepository
	vaccines repositories.VaccineRepository
	logger   *zap.Logger
}

func NewCalendarService(events repositories.CalendarRepository, vaccines repositories.VaccineRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{
		events:   events,
		vaccines: vaccines,
		logger:   logger,
	}
}

// CalendarInput carries the create/update form. Vaccine is the vaccine's
// name, not its id.
type CalendarInput struct {
	Local       string
	Date        string
	Places      int
	Status      string
	Observation string
	Responsible string
	Vaccine     string
}

func (in CalendarInput) validate() error {
	if in.Local == "" {
		return reject("The local is mandatory")
	}
	if in.Date == "" {
		return reject("The date is mandatory")
	}
	if _, ok := parseISODate(in.Date); !ok {
		return reject("Incorrect date entered")
	}
	if in.Places == 0 {
		return reject("The places is mandatory")
	}
	if in.Responsible == "" {
		return reject("The responsible is mandatory")
	}
	if in.Vaccine == "" {
		return reject("The vaccine is mandatory")
	}
	return nil
}

func (s *CalendarService) List(ctx context.Context) ([]*entities.CalendarEvent, error) {
	return s.events.GetAll(ctx)
}

func (s *CalendarService) Get(ctx context.Context, id string) (*entities.CalendarEvent, error) {
	if uuid.Validate(id) != nil {
		return nil, reject("Invalid id")
	}

	event, err := s.events.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Event not found")
	}
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Create schedules a new event. Status and observation always start at
// their defaults; only an update stores client-supplied values for them.
func (s *CalendarService) Create(ctx context.Context, in CalendarInput) (*entities.CalendarEvent, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	vaccine, err := s.vaccines.GetByName(ctx, in.Vaccine)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Vaccine not found")
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.events.GetBySlot(ctx, in.Local, in.Date, ""); err == nil {
		return nil, rejectMsg("Event with venue and date already registered")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	event := &entities.CalendarEvent{
		ID:          uuid.New().String(),
		Local:       in.Local,
		Date:        in.Date,
		Places:      in.Places,
		Responsible: in.Responsible,
		Status:      entities.DefaultEventStatus,
		Observation: entities.DefaultEventObservation,
		VaccineID:   vaccine.ID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("calendar event registered",
		zap.String("event_id", event.ID),
		zap.String("local", event.Local),
		zap.String("date", event.Date))
	return event, nil
}

func (s *CalendarService) Update(ctx context.Context, id string, in CalendarInput) (*entities.CalendarEvent, error) {
	if uuid.Validate(id) != nil {
		return nil, reject("Invalid id")
	}

	event, err := s.events.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Event not found")
	}
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	vaccine, err := s.vaccines.GetByName(ctx, in.Vaccine)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Vaccine not found")
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.events.GetBySlot(ctx, in.Local, in.Date, id); err == nil {
		return nil, rejectMsg("Event with venue and date already registered")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	event.Local = in.Local
	event.Date = in.Date
	event.Places = in.Places
	event.Responsible = in.Responsible
	event.Status = in.Status
	event.Observation = in.Observation
	event.VaccineID = vaccine.ID

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *CalendarService) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return reject("Invalid id")
	}

	if _, err := s.events.GetByID(ctx, id); errors.Is(err, repositories.ErrNotFound) {
		return reject("Event not found")
	} else if err != nil {
		return err
	}

	return s.events.Delete(ctx, id)
}
