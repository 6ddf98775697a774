package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/healthcamp-backend/internal/domain/errors"
	"github.com/rafabene/healthcamp-backend/internal/handlers/dto"
)

// respondError mapeia erros de domínio para respostas RFC 7807.
// A taxonomia (validação / conflito / não-encontrado / indisponível)
// substitui o colapso booleano do design original.
func respondError(c *gin.Context, err error) {
	var domainErr *errors.DomainError
	if errs.As(err, &domainErr) && domainErr.Type == errors.ProblemTypeValidation {
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: domainErr.Field, Message: dto.T(c, domainErr.Message)},
		})
		c.JSON(http.StatusBadRequest, response)
		return
	}

	switch {
	case errs.Is(err, errors.ErrUsernameAlreadyExists),
		errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))

	case errs.Is(err, errors.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Patient"))

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))

	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))

	case errs.Is(err, errors.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.UnavailableErrorResponseI18n(c))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError trata falhas do ShouldBindJSON
func respondBindingError(c *gin.Context, err error) {
	validationErrors := dto.FromBindingError(c, err)
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, validationErrors))
}
