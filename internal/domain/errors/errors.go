package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrPatientNotFound       = errors.New("error.patient_not_found")
	ErrUsernameAlreadyExists = errors.New("error.username_already_exists")
	ErrEmailAlreadyExists    = errors.New("error.email_already_exists")
	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrUnauthorized          = errors.New("error.unauthorized")
	ErrForbidden             = errors.New("error.forbidden")
	ErrStorageUnavailable    = errors.New("error.storage_unavailable")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeUnavailable  = "/problems/storage-unavailable"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional.
// O campo Field carrega o nome do campo quando o erro é de validação,
// permitindo mensagens específicas por campo na borda HTTP.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um DomainError de validação para um campo
func NewValidationError(field, messageID string) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   "error.validation.title",
		Message: messageID,
		Field:   field,
	}
}

// IsValidation verifica se o erro é de validação de entrada
func IsValidation(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == ProblemTypeValidation
}

// IsConflict verifica se o erro é de violação de unicidade
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsernameAlreadyExists) || errors.Is(err, ErrEmailAlreadyExists)
}
