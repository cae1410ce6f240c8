package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody replica el formato de error estándar de la API:
// {timestamp, status, error, message, path}.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path,omitempty"`
}

// FieldError es un error de validación por campo: {campo, mensaje}.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

func NewErrorBody(status int, msg, path string) ErrorBody {
	return ErrorBody{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   msg,
		Path:      path,
	}
}

// BindError traduce un fallo de binding de gin. Si viene del validador,
// devuelve la lista de errores por campo; si no, un cuerpo genérico 400.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Campo:   fe.Field(),
				Mensaje: bindMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	c.JSON(http.StatusBadRequest, NewErrorBody(http.StatusBadRequest, err.Error(), c.Request.URL.Path))
}

func bindMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "El campo es obligatorio"
	case "max":
		return "El campo supera la longitud máxima permitida"
	default:
		return "El campo no es válido"
	}
}

// Abort corta la petición con un cuerpo de error estándar.
func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, NewErrorBody(httpStatus, msg, c.Request.URL.Path))
}
