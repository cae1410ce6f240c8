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

type CourseHandler struct {
	Config        *config.Config
	CourseService service.ICourseService
}

func (h *CourseHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	courses := r.Group("/cursos", authorize)
	courses.POST("", context.Wrap(h.Register))
	courses.GET("", context.Wrap(h.List))
}

func (h *CourseHandler) Register(c *gin.Context) error {
	var req types.RegisterCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil
	}

	course, err := h.CourseService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, course)
	return nil
}

func (h *CourseHandler) List(c *gin.Context) error {
	courses, err := h.CourseService.List(c.Request.Context())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, courses)
	return nil
}
