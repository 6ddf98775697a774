package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/healthcamp-backend/internal/domain/entities"
	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/domain/ports"
	"github.com/rafabene/healthcamp-backend/internal/domain/repositories"
)

// AuthService valida credenciais contra o diretório de usuários e emite
// tokens de sessão JWT (HS256)
type AuthService struct {
	userRepo     repositories.UserRepository
	logger       ports.Logger
	jwtSecret    []byte
	accessExpiry time.Duration
}

// NewAuthService cria um novo AuthService.
// accessExpiry é uma duração no formato de time.ParseDuration (ex: "24h").
func NewAuthService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
	jwtSecret string,
	accessExpiry string,
) (*AuthService, error) {
	expiry, err := time.ParseDuration(accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid access expiry %q: %w", accessExpiry, err)
	}

	return &AuthService{
		userRepo:     userRepo,
		logger:       logger,
		jwtSecret:    []byte(jwtSecret),
		accessExpiry: expiry,
	}, nil
}

// Login busca a conta por username ou email e compara a senha com o hash
// armazenado. Usuário desconhecido e senha errada resultam no mesmo erro,
// sem vazar qual dos dois ocorreu.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// ValidateToken valida um token de acesso e retorna o id do usuário (claim sub)
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, errors.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.ErrUnauthorized
	}

	return uint(userID), nil
}

func (s *AuthService) generateToken(user *entities.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
