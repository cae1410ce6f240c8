package handler

import (
	"net/http"

	"forohub/config"
	"forohub/middleware"
	"forohub/pkg/context"
	"forohub/pkg/response"
	"forohub/service"
	"forohub/types"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	Config       *config.Config
	TopicService service.ITopicService
	ReplyService service.IReplyService
}

func (h *ReplyHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	topics := r.Group("/topicos", authorize)
	topics.POST("/:id/respuestas", context.Wrap(h.Create))
	topics.GET("/:id/respuestas", context.Wrap(h.List))
	topics.GET("/:id/soluciones", context.Wrap(h.ListSolutions))
}

// Create agrega una respuesta al tópico. Si viene marcada como solución, el
// servicio aplica las reglas de resolución y la transición de estado.
func (h *ReplyHandler) Create(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil
	}

	reply, err := h.TopicService.WriteReply(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, reply)
	return nil
}

func (h *ReplyHandler) List(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	replies, err := h.ReplyService.ListByTopic(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, replies)
	return nil
}

// ListSolutions respuestas marcadas como solución (0 o 1 en condiciones
// normales; la lista delata violaciones de la regla).
func (h *ReplyHandler) ListSolutions(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	replies, err := h.ReplyService.ListSolutions(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, replies)
	return nil
}
