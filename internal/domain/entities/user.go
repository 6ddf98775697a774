package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/rafabene/healthcamp-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa uma conta de operador da clínica.
// Contas são criadas via signup e nunca atualizadas ou removidas pelo sistema;
// a listagem completa existe apenas para fins administrativos.
type User struct {
	ID           uint
	Username     string
	Email        valueobjects.Email
	PasswordHash string
	CreatedAt    time.Time
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if len(strings.TrimSpace(u.Username)) < 3 {
		return errors.New("username must be at least 3 characters")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}
