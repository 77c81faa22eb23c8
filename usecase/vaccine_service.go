package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
)

// VaccineService manages the vaccine catalog. Names are globally unique;
// edits exclude the vaccine being changed from the conflict search.
type VaccineService struct {
	vaccines repositories.VaccineRepository
	logger   *zap.Logger
}

func NewVaccineService(vaccines repositories.VaccineRepository, logger *zap.Logger) *VaccineService {
	return &VaccineService{
		vaccines: vaccines,
		logger:   logger,
	}
}

// VaccineInput carries the create/update form.
type VaccineInput struct {
	Name             string
	Type             string
	Manufacturer     string
	Description      string
	ContraIndication string
}

func (in VaccineInput) validate() error {
	if in.Name == "" || in.Type == "" || in.Manufacturer == "" || in.Description == "" || in.ContraIndication == "" {
		return reject("All fields must be filled out")
	}
	return nil
}

func (s *VaccineService) List(ctx context.Context) ([]*entities.Vaccine, error) {
	return s.vaccines.GetAll(ctx)
}

func (s *VaccineService) Create(ctx context.Context, in VaccineInput) (*entities.Vaccine, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.vaccines.GetByName(ctx, in.Name); err == nil {
		return nil, reject("The vaccine already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	vaccine := &entities.Vaccine{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Type:             in.Type,
		Manufacturer:     in.Manufacturer,
		Description:      in.Description,
		ContraIndication: in.ContraIndication,
	}

	if err := s.vaccines.Create(ctx, vaccine); err != nil {
		return nil, err
	}

	s.logger.Info("vaccine registered", zap.String("vaccine_id", vaccine.ID), zap.String("name", vaccine.Name))
	return vaccine, nil
}

func (s *VaccineService) Get(ctx context.Context, id string) (*entities.Vaccine, error) {
	if uuid.Validate(id) != nil {
		return nil, reject("Invalid id")
	}

	vaccine, err := s.vaccines.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, rejectMsg("vaccine not found")
	}
	if err != nil {
		return nil, err
	}

	return vaccine, nil
}

func (s *VaccineService) Update(ctx context.Context, id string, in VaccineInput) (*entities.Vaccine, error) {
	if uuid.Validate(id) != nil {
		return nil, reject("Invalid id")
	}

	vaccine, err := s.vaccines.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Not existing vaccine")
	}
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	if other, err := s.vaccines.GetByName(ctx, in.Name); err == nil {
		if other.ID != id {
			return nil, reject("There is already a registered vaccine with this name ")
		}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	vaccine.Name = in.Name
	vaccine.Type = in.Type
	vaccine.Manufacturer = in.Manufacturer
	vaccine.Description = in.Description
	vaccine.ContraIndication = in.ContraIndication

	if err := s.vaccines.Update(ctx, vaccine); err != nil {
		return nil, err
	}

	return vaccine, nil
}

func (s *VaccineService) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return reject("Invalid id")
	}

	if _, err := s.vaccines.GetByID(ctx, id); errors.Is(err, repositories.ErrNotFound) {
		return reject("Not existing vaccine")
	} else if err != nil {
		return err
	}

	return s.vaccines.Delete(ctx, id)
}
