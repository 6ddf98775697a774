package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey é a chave do id de requisição no contexto do Gin
	RequestIDContextKey = "request_id"
	// RequestIDHeader é o header de correlação aceito e devolvido
	RequestIDHeader = "X-Request-ID"
)

// RequestID atribui um identificador único a cada requisição para correlação
// nos logs. Um X-Request-ID vindo do cliente é reaproveitado.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
