package handler

import (
	"net/http"
	"strconv"

	"forohub/config"
	"forohub/middleware"
	"forohub/pkg/context"
	"forohub/pkg/response"
	"forohub/service"
	"forohub/types"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	Config       *config.Config
	TopicService service.ITopicService
}

func (h *TopicHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	topics := r.Group("/topicos", authorize)
	topics.POST("", context.Wrap(h.Register))
	topics.GET("", context.Wrap(h.List))
	topics.POST("/buscar", context.Wrap(h.Search))
	topics.GET("/con-solucion", context.Wrap(h.ListResolved))
	topics.POST("/soluciones", context.Wrap(h.WriteSolution))
	topics.GET("/soluciones/:id", context.Wrap(h.DetailWithSolution))
	topics.GET("/:id", context.Wrap(h.Detail))
	topics.PUT("", context.Wrap(h.Update))
	topics.DELETE("/:id", context.Wrap(h.Delete))
}

// Register crea un tópico nuevo. 201 con el detalle completo.
func (h *TopicHandler) Register(c *gin.Context) error {
	var req types.RegisterTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil
	}

	detail, err := h.TopicService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, detail)
	return nil
}

// List listado paginado con filtros opcionales nombreCurso y ano.
func (h *TopicHandler) List(c *gin.Context) error {
	page, size := pagination(c)
	result, err := h.TopicService.List(
		c.Request.Context(),
		c.Query("nombreCurso"),
		c.Query("ano"),
		page, size,
	)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// Search búsqueda por cuerpo JSON; ambos filtros obligatorios.
func (h *TopicHandler) Search(c *gin.Context) error {
	var filter types.SearchTopicFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		response.BindError(c, err)
		return nil
	}

	page, size := pagination(c)
	result, err := h.TopicService.Search(c.Request.Context(), &filter, page, size)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// Detail lectura superficial: sin respuestas, solucion siempre null.
func (h *TopicHandler) Detail(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.TopicService.GetByID(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, detail)
	return nil
}

// DetailWithSolution lectura profunda con el texto de la solución.
func (h *TopicHandler) DetailWithSolution(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.TopicService.GetByIDWithSolution(c.Request.Context(), id)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, detail)
	return nil
}

// WriteSolution escribe una respuesta (posible solución) y devuelve el
// detalle refrescado del tópico.
func (h *TopicHandler) WriteSolution(c *gin.Context) error {
	var req types.WriteSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil
	}

	detail, err := h.TopicService.WriteSolution(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, detail)
	return nil
}

func (h *TopicHandler) Update(c *gin.Context) error {
	var req types.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil
	}

	detail, err := h.TopicService.Update(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, detail)
	return nil
}

func (h *TopicHandler) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.TopicService.Delete(c.Request.Context(), id); err != nil {
		return err
	}

	c.Status(http.StatusNoContent)
	return nil
}

func (h *TopicHandler) ListResolved(c *gin.Context) error {
	page, size := pagination(c)
	result, err := h.TopicService.ListResolved(c.Request.Context(), page, size)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// pathID parsea el :id numérico de la ruta.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.InvalidInput("El ID del tópico es obligatorio y debe ser válido.")
	}
	return id, nil
}

// pagination page/size de la query, con valores por defecto 0/10.
func pagination(c *gin.Context) (int, int) {
	page := 0
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 0 {
		page = v
	}
	size := 10
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 100 {
		size = v
	}
	return page, size
}
