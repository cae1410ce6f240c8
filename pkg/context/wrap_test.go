package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"forohub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h func(*gin.Context) error) (*httptest.ResponseRecorder, response.ErrorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Wrap(h))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body response.ErrorBody
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestWrapNotFoundIs404(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return response.NotFound("Tópico no encontrado.")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Tópico no encontrado.", body.Message)
	assert.Equal(t, "/x", body.Path)
}

func TestWrapRuleViolationIs400(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return response.RuleViolation(response.RuleSelfSolution, "El autor del tópico no puede marcar su propia respuesta como solución.")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad Request", body.Error)
}

func TestWrapUnexpectedErrorIs500(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return errors.New("se cayó la base de datos")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// el detalle interno no se filtra al cliente
	assert.Equal(t, "Error interno del servidor", body.Message)
}

func TestWrapNoErrorWritesNothingExtra(t *testing.T) {
	w, _ := serve(t, func(c *gin.Context) error {
		c.JSON(http.StatusCreated, gin.H{"id": 1})
		return nil
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
