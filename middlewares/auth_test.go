package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"api/utils"
)

func authHandlerCalled(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return handler, &called
}

func TestAuthSemToken(t *testing.T) {
	next, called := authHandlerCalled(t)

	r := httptest.NewRequest("GET", "/v1/funnels", nil)
	w := httptest.NewRecorder()

	Auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *called)
}

func TestAuthTokenRejeitadoPelaAPIDeIdentidade(t *testing.T) {
	identityAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer identityAPI.Close()
	os.Setenv(utils.AUTH_API_URL, identityAPI.URL)
	defer os.Unsetenv(utils.AUTH_API_URL)

	next, called := authHandlerCalled(t)

	r := httptest.NewRequest("GET", "/v1/funnels", nil)
	r.Header.Set("Authorization", "Bearer token-invalido")
	w := httptest.NewRecorder()

	Auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *called)
}

func TestAuthEmailForaDaListaDePermitidos(t *testing.T) {
	identityAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthAPIUser{
			ID:    42,
			Name:  "Visitante",
			Email: "visitante@outraempresa.com",
		})
	}))
	defer identityAPI.Close()
	os.Setenv(utils.AUTH_API_URL, identityAPI.URL)
	defer os.Unsetenv(utils.AUTH_API_URL)

	next, called := authHandlerCalled(t)

	r := httptest.NewRequest("GET", "/v1/funnels", nil)
	r.Header.Set("Authorization", "Bearer token-valido")
	w := httptest.NewRecorder()

	Auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *called)
}

func TestAuthRespostaSemEmail(t *testing.T) {
	identityAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthAPIUser{ID: 42, Name: "Sem Email"})
	}))
	defer identityAPI.Close()
	os.Setenv(utils.AUTH_API_URL, identityAPI.URL)
	defer os.Unsetenv(utils.AUTH_API_URL)

	next, called := authHandlerCalled(t)

	r := httptest.NewRequest("GET", "/v1/funnels", nil)
	r.Header.Set("Authorization", "Bearer token-valido")
	w := httptest.NewRecorder()

	Auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *called)
}

func TestGetAuthUserSemContexto(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/funnels", nil)

	_, ok := GetAuthUser(r)

	assert.False(t, ok)
}
