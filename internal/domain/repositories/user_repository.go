package repositories

import (
	"context"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Erros de unicidade são traduzidos para os sentinelas de conflito
// em internal/domain/errors; "não encontrado" vira ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*entities.User, error)
}
