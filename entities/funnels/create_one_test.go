package funnels

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

func authenticatedRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	user := schemas.User{ID: bson.NewObjectID(), Email: "vendas@gonsolutions.com"}
	return r.WithContext(context.WithValue(r.Context(), middlewares.UserContextKey, user))
}

func TestCreateOneSemAutenticacao(t *testing.T) {
	r := httptest.NewRequest("POST", "/v1/funnels", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	CreateOne(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOneSemNome(t *testing.T) {
	body := `{"name":"  ","stages":[{"id":"novo","name":"Novo"}]}`
	w := httptest.NewRecorder()

	CreateOne(w, authenticatedRequest("POST", "/v1/funnels", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nome do funil")
}

func TestCreateOneEstagiosInvalidos(t *testing.T) {
	t.Run("ListaVazia", func(t *testing.T) {
		body := `{"name":"Funil de Parcerias","stages":[]}`
		w := httptest.NewRecorder()

		CreateOne(w, authenticatedRequest("POST", "/v1/funnels", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("IDDuplicado", func(t *testing.T) {
		body := `{"name":"Funil de Parcerias","stages":[{"id":"novo","name":"Novo"},{"id":"novo","name":"Repetido"}]}`
		w := httptest.NewRecorder()

		CreateOne(w, authenticatedRequest("POST", "/v1/funnels", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "duplicado")
	})
}

func TestCreateOneCorpoInvalido(t *testing.T) {
	w := httptest.NewRecorder()

	CreateOne(w, authenticatedRequest("POST", "/v1/funnels", "{nao-e-json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
