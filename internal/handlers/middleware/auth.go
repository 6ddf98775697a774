package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/healthcamp-backend/internal/services"
)

const (
	// UserIDContextKey é a chave do id do usuário autenticado no contexto do Gin
	UserIDContextKey = "user_id"
)

// AuthMiddleware valida o token Bearer e resolve a identidade do chamador
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequireAuth exige um token de acesso válido; o id do usuário dono fica
// disponível no contexto para o escopo das operações de prontuário
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			m.abortUnauthorized(c)
			return
		}

		userID, err := m.authService.ValidateToken(token)
		if err != nil {
			m.abortUnauthorized(c)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func (m *AuthMiddleware) abortUnauthorized(c *gin.Context) {
	p := problems.NewStatusProblem(http.StatusUnauthorized)
	p.Detail = "a valid bearer token is required"
	p.Instance = c.Request.URL.Path
	c.AbortWithStatusJSON(http.StatusUnauthorized, p)
}

// GetUserID retorna o id do usuário autenticado no contexto da requisição
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	return userID, ok
}
