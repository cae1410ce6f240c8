package context

import (
	"errors"
	"net/http"

	"forohub/pkg/log"
	"forohub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxPrincipal = "principal"
	CtxRequestID = "request_id"
)

// Wrap adapta un handler que devuelve error. Un *response.DomainError se
// traduce a su código 4xx con el cuerpo estándar; cualquier otro error es un
// fallo inesperado de capa inferior y sale como 500 sin enmascarar.
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// si ya se escribió la respuesta, no tocar nada
			if c.Writer.Written() {
				return
			}
			var de *response.DomainError
			if errors.As(err, &de) {
				status := de.HTTPStatus()
				c.JSON(status, response.NewErrorBody(status, de.Msg, c.Request.URL.Path))
				return
			}
			log.L.Error("unhandled error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError,
				response.NewErrorBody(http.StatusInternalServerError, "Error interno del servidor", c.Request.URL.Path))
		}
	}
}

// Principal devuelve el login autenticado puesto por el middleware de auth.
func Principal(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxPrincipal)
	if !ok {
		return "", errors.New("principal no presente en el contexto")
	}

	login, ok := v.(string)
	if !ok {
		return "", errors.New("principal con tipo inesperado")
	}

	return login, nil
}
