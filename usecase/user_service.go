package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/domain/repositories"
	"github.com/immunika/server/internal/auth"
)

// UserService handles account registration, authentication and profile
// management. Uniqueness of email and telefone is checked before every
// write; updates exclude the account being edited from the conflict search.
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.JWT
	logger *zap.Logger
}

func NewUserService(users repositories.UserRepository, tokens *auth.JWT, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// UserInput carries the registration/update form.
type UserInput struct {
	Name            string
	Password        string
	ConfirmPassword string
	Email           string
	Telefone        string
	Latitude        float64
	Longitude       float64
}

// validate runs the ordered field checks; the first failure wins.
func (in UserInput) validate() error {
	if in.Name == "" {
		return reject("The name is mandatory")
	}
	if in.Password == "" {
		return reject("The password is mandatory")
	}
	if in.ConfirmPassword != in.Password {
		return reject("Check your password")
	}
	if in.Email == "" {
		return reject("The email is mandatory")
	}
	if in.Telefone == "" {
		return reject("The telefone is mandatory")
	}
	if in.Latitude == 0 || in.Longitude == 0 {
		return reject("The location is mandatory")
	}
	return nil
}

func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.users.GetAll(ctx)
}

// Register creates a new account. The email lookup runs first and
// short-circuits the telefone lookup when it already collides.
func (s *UserService) Register(ctx context.Context, in UserInput) (*entities.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, reject("Existing user with this e-mail or with this telefone")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByTelefone(ctx, in.Telefone); err == nil {
		return nil, reject("Existing user with this e-mail or with this telefone")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Password:  hash,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Image:     entities.DefaultUserImage,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Credentials carries the authentication form.
type Credentials struct {
	Name            string
	Password        string
	ConfirmPassword string
	Email           string
}

// Authenticate checks the credentials and issues a bearer token.
func (s *UserService) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	if creds.Name == "" {
		return "", rejectErro("The name is mandatory")
	}
	if creds.Password == "" {
		return "", rejectErro("The password is mandatory")
	}
	if creds.ConfirmPassword != creds.Password {
		return "", rejectErro("Check your password")
	}
	if creds.Email == "" {
		return "", rejectErro("The email is mandatory")
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", rejectErro("User does not exist")
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.Password, creds.Password) || user.Name != creds.Name {
		return "", rejectErro("Invalid password or user")
	}

	return s.tokens.Generate(user.ID, user.Name)
}

// Profile is the subset of account fields exposed on reads.
type Profile struct {
	Image     string  `json:"image"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Telefone  string  `json:"telefone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (s *UserService) Get(ctx context.Context, id string) (*Profile, error) {
	if uuid.Validate(id) != nil {
		return nil, reject("Invalid id")
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("User not found")
	}
	if err != nil {
		return nil, err
	}

	return &Profile{
		Image:     user.Image,
		Name:      user.Name,
		Email:     user.Email,
		Telefone:  user.Telefone,
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
	}, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UserInput) (*entities.User, error) {
	if uuid.Validate(id) != nil {
		return nil, reject("Invalid id")
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, reject("Not existing user")
	}
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	if other, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		if other.ID != id {
			return nil, reject("E-mail or phone is already being used by another user")
		}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if other, err := s.users.GetByTelefone(ctx, in.Telefone); err == nil {
		if other.ID != id {
			return nil, reject("E-mail or phone is already being used by another user")
		}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Password = hash
	user.Email = in.Email
	user.Telefone = in.Telefone
	user.Latitude = in.Latitude
	user.Longitude = in.Longitude

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes the account and returns the stored image name so the
// caller can clean up the file.
func (s *UserService) Delete(ctx context.Context, id string) (string, error) {
	if uuid.Validate(id) != nil {
		return "", reject("Invalid id")
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", reject("Not existing user")
	}
	if err != nil {
		return "", err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return "", err
	}

	s.logger.Info("user removed", zap.String("user_id", id))
	return user.Image, nil
}

// AttachImage stores the uploaded filename and returns the previous one so
// the caller can remove the stale file.
func (s *UserService) AttachImage(ctx context.Context, id, filename string) (string, error) {
	if uuid.Validate(id) != nil {
		return "", reject("Invalid id")
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", rejectErro("User does not exist")
	}
	if err != nil {
		return "", err
	}

	previous := user.Image
	user.Image = filename
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	return previous, nil
}
