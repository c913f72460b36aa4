package activities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"api/middlewares"
	"api/schemas"
)

func TestIsValidType(t *testing.T) {
	for _, valid := range []string{"call", "email", "meeting", "task", "note"} {
		assert.True(t, isValidType(valid), valid)
	}
	assert.False(t, isValidType("reuniao"))
	assert.False(t, isValidType(""))
}

func TestIsValidStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "cancelled"} {
		assert.True(t, isValidStatus(valid), valid)
	}
	assert.False(t, isValidStatus("done"))
	assert.False(t, isValidStatus(""))
}

func authenticatedRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	user := schemas.User{ID: bson.NewObjectID(), Email: "vendas@gonsolutions.com"}
	return r.WithContext(context.WithValue(r.Context(), middlewares.UserContextKey, user))
}

func TestCreateOneValidacao(t *testing.T) {
	t.Run("SemTitulo", func(t *testing.T) {
		w := httptest.NewRecorder()

		CreateOne(w, authenticatedRequest("POST", "/v1/activities", `{"type":"call"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "título")
	})

	t.Run("TipoInvalido", func(t *testing.T) {
		w := httptest.NewRecorder()

		CreateOne(w, authenticatedRequest("POST", "/v1/activities", `{"title":"Ligar para cliente","type":"ligacao"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Tipo de atividade inválido")
	})

	t.Run("SemAutenticacao", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/activities", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		CreateOne(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
