package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// VaccinationService tracks the doses a user received. The user id always
// comes from the authenticated token, never from the request payload.
type VaccinationService struct {
	records  repositories.VaccinationRepository
	users    repositories.UserRepository
	vaccines repositories.VaccineRepository
	logger   *zap.Logger
}

func NewVaccinationService(
	records repositories.VaccinationRepository,
	users repositories.UserRepository,
	vaccines repositories.VaccineRepository,
	logger *zap.Logger,
) *VaccinationService {
	return &VaccinationService{
		records:  records,
		users:    users,
		vaccines: vaccines,
		logger:   logger,
	}
}

// VaccinationInput carries the create/update form. Vaccine is the vaccine's
// name.
type VaccinationInput struct {
	Date    string
	Applied int
	Vaccine string
}

func (s *VaccinationService) lookupUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *VaccinationService) List(ctx context.Context, userID string) ([]*entities.VaccinationRecord, error) {
	if _, err := s.lookupUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.records.GetByUser(ctx, userID)
}

// Register creates a vaccination record. The duplicate rule is a
// conjunction: the request is rejected only when the user already holds a
// record for the same vaccine AND some existing record falls on the same
// calendar day as the proposed date. The two conditions may be satisfied by
// different records. Quantity always starts at one dose.
func (s *VaccinationService) Register(ctx context.Context, userID string, in VaccinationInput) (*entities.VaccinationRecord, error) {
	if _, err := s.lookupUser(ctx, userID); err != nil {
		return nil, err
	}

	if in.Vaccine == "" {
		return nil, reject("The vaccine is mandatory")
	}
	vaccine, err := s.vaccines.GetByName(ctx, in.Vaccine)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Vaccine not found")
	}
	if err != nil {
		return nil, err
	}

	if in.Date == "" {
		return nil, reject("The date is mandatory")
	}
	date, ok := parseISODate(in.Date)
	if !ok {
		return nil, reject("Incorrect date entered")
	}

	sameVaccine, err := s.records.CountByUserAndVaccine(ctx, userID, vaccine.ID)
	if err != nil {
		return nil, err
	}
	existing, err := s.records.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sameDayHit := false
	for _, record := range existing {
		if sameDay(record.Date, date) {
			sameDayHit = true
			break
		}
	}
	if sameVaccine >= 1 && sameDayHit {
		return nil, rejectMsg("Vaccination registration already done")
	}

	record := &entities.VaccinationRecord{
		ID:              uuid.New().String(),
		Date:            date,
		QuantityApplied: 1,
		VaccineID:       vaccine.ID,
		UserID:          userID,
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("vaccination registered",
		zap.String("record_id", record.ID),
		zap.String("user_id", userID),
		zap.String("vaccine_id", vaccine.ID))
	return record, nil
}

// Update edits a record; the duplicate check matches on (vaccine, exact
// date) and excludes the record being edited. Returns the user and their
// refreshed record set.
func (s *VaccinationService) Update(ctx context.Context, userID, recordID string, in VaccinationInput) (*entities.User, []*entities.VaccinationRecord, error) {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if in.Vaccine == "" {
		return nil, nil, reject("The vaccine is mandatory")
	}
	vaccine, err := s.vaccines.GetByName(ctx, in.Vaccine)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, reject("Vaccine not found")
	}
	if err != nil {
		return nil, nil, err
	}

	date, ok := parseISODate(in.Date)
	if in.Date == "" || !ok {
		return nil, nil, reject("Incorrect date entered")
	}

	if uuid.Validate(recordID) != nil {
		return nil, nil, reject("Invalid id")
	}

	record, err := s.records.GetByID(ctx, recordID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, reject("Vaccination not found")
	}
	if err != nil {
		return nil, nil, err
	}

	duplicates, err := s.records.CountDuplicates(ctx, userID, vaccine.ID, date, recordID)
	if err != nil {
		return nil, nil, err
	}
	if duplicates > 0 {
		return nil, nil, rejectMsg("Vaccination registration already done")
	}

	record.Date = date
	record.QuantityApplied = in.Applied
	record.VaccineID = vaccine.ID

	if err := s.records.Update(ctx, record); err != nil {
		return nil, nil, err
	}

	records, err := s.records.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, records, nil
}

// Remove deletes a record and detaches it from the user's set. Returns the
// user and their remaining records.
func (s *VaccinationService) Remove(ctx context.Context, userID, recordID string) (*entities.User, []*entities.VaccinationRecord, error) {
	if uuid.Validate(recordID) != nil {
		return nil, nil, reject("Invalid id")
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.records.GetByID(ctx, recordID); errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, reject("Vaccination not found")
	} else if err != nil {
		return nil, nil, err
	}

	if err := s.records.Delete(ctx, recordID); err != nil {
		return nil, nil, err
	}

	records, err := s.records.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, records, nil
}
