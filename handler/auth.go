package handler

import (
	"errors"
	"net/http"

	"forohub/config"
	"forohub/pkg/context"
	"forohub/pkg/response"
	"forohub/service"
	"forohub/types"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *AuthHandler) RegisterRouter(r gin.IRouter) {
	// único endpoint sin autenticación
	r.POST("/login", context.Wrap(h.Login))
}

func (h *AuthHandler) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil
	}

	token, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Abort(c, http.StatusUnauthorized, "Login o contraseña incorrectos")
			return nil
		}
		return err
	}

	c.JSON(http.StatusOK, token)
	return nil
}
