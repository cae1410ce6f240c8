package middleware

import (
	"net/http"
	"strings"

	"forohub/pkg/context"
	"forohub/pkg/jwt"
	"forohub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth exige un bearer token válido y deja el principal en el contexto.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Falta la cabecera Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Formato de Authorization inválido")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Token JWT inválido o expirado")
			return
		}

		c.Set(context.CtxPrincipal, claims.Login)

		c.Next()
	}
}
