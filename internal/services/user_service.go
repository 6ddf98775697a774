package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/domain/ports"
	"github.com/rafabene/healthcamp-backend/internal/domain/repositories"
	"github.com/rafabene/healthcamp-backend/internal/domain/valueobjects"
)

const (
	minUsernameLength = 3
	minPasswordLength = 4
)

// UserService contém a lógica de negócio para contas de operador
type UserService struct {
	userRepo   repositories.UserRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
	bcryptCost int
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
	bcryptCost int,
) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		uow:        uow,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// SignUpInput representa os dados para criar uma conta
type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignUp valida os dados de cadastro e cria uma nova conta.
// A senha é armazenada como hash bcrypt. Os pre-checks de unicidade existem
// para mensagens mais cedo; a constraint UNIQUE do storage é o backstop real
// contra a corrida entre check e insert.
func (s *UserService) SignUp(ctx context.Context, input SignUpInput) (*entities.User, error) {
	if err := s.validateSignUp(input); err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.NewValidationError("email", errors.ErrInvalidEmail.Error())
	}

	username := strings.TrimSpace(input.Username)

	taken, err := s.userRepo.IsUsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.ErrUsernameAlreadyExists
	}

	taken, err = s.userRepo.IsEmailTaken(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		s.logger.Warn("signup failed", "username", username, "error", err)
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// ListUsers retorna todas as contas, mais recentes primeiro (listagem
// administrativa)
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) validateSignUp(input SignUpInput) error {
	if len(strings.TrimSpace(input.Username)) < minUsernameLength {
		return errors.NewValidationError("username", "validation.username_min")
	}

	if len(input.Password) < minPasswordLength {
		return errors.NewValidationError("password", "validation.password_min")
	}

	if input.Password != input.ConfirmPassword {
		return errors.NewValidationError("confirm_password", "validation.password_mismatch")
	}

	return nil
}
