package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FromBindingError converte erros do binding do Gin (validator.v10) em
// erros de validação por campo. Para erros que não são do validator
// (JSON malformado, por exemplo), retorna nil e a resposta genérica de
// validação é usada.
func FromBindingError(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(c, fe),
			Tag:     fe.Tag(),
		})
	}
	return result
}

func messageForTag(c *gin.Context, fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch {
	case field == "username" && fe.Tag() == "min":
		return T(c, "validation.username_min")
	case field == "password" && fe.Tag() == "min":
		return T(c, "validation.password_min")
	case field == "confirmpassword" && fe.Tag() == "eqfield":
		return T(c, "validation.password_mismatch")
	case field == "name" && fe.Tag() == "required":
		return T(c, "validation.name_required")
	case field == "age":
		return T(c, "validation.age_range")
	case field == "gender":
		return T(c, "validation.gender_invalid")
	case field == "visitdate":
		return T(c, "validation.visit_date_invalid")
	case field == "email":
		return T(c, "error.invalid_email")
	default:
		return fe.Tag()
	}
}
