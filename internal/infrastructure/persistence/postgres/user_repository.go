package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/domain/repositories"
	"github.com/rafabene/healthcamp-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A constraint é o backstop real; descobrir qual coluna colidiu
			// para devolver o conflito específico. A consulta roda fora da
			// transação corrente, que já abortou com a violação.
			var count int64
			checkErr := r.db.WithContext(ctx).Model(&UserModel{}).
				Where("username = ?", user.Username).Count(&count).Error
			if checkErr == nil && count > 0 {
				return domainerrors.ErrUsernameAlreadyExists
			}
			return domainerrors.ErrEmailAlreadyExists
		}
		return storageError(err)
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	err := db.Where("username = ? OR email = ?", identifier, identifier).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, storageError(err)
	}

	return r.toEntity(&model)
}

func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	if err := db.Model(&UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, storageError(err)
	}

	return count > 0, nil
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	if err := db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, storageError(err)
	}

	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := r.getDB(ctx)
	err := db.Model(&UserModel{}).Order("created_at DESC, id DESC").Find(&models).Error
	if err != nil {
		return nil, storageError(err)
	}

	return r.toEntities(models)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        email,
		PasswordHash: model.PasswordHash,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// storageError marca falhas de storage como indisponibilidade, mantendo a
// causa na mensagem para o log.
func storageError(err error) error {
	return fmt.Errorf("%w: %v", domainerrors.ErrStorageUnavailable, err)
}
