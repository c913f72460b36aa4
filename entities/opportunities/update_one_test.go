package opportunities

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

func TestUpdateOneCamposObrigatoriosEmBranco(t *testing.T) {
	id := bson.NewObjectID().Hex()

	t.Run("TituloVazioRejeitado", func(t *testing.T) {
		r := authenticatedRequest("PATCH", "/v1/opportunities/"+id, `{"title":""}`)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()

		UpdateOne(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "título")
	})

	t.Run("TituloSoComEspacosRejeitado", func(t *testing.T) {
		r := authenticatedRequest("PATCH", "/v1/opportunities/"+id, `{"title":"   ","value":500}`)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()

		UpdateOne(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("EstagioVazioRejeitado", func(t *testing.T) {
		r := authenticatedRequest("PATCH", "/v1/opportunities/"+id, `{"stage":""}`)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()

		UpdateOne(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "estágio")
	})

	t.Run("ProbabilidadeForaDoIntervalo", func(t *testing.T) {
		r := authenticatedRequest("PATCH", "/v1/opportunities/"+id, `{"probability":120}`)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()

		UpdateOne(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CorpoSemCampos", func(t *testing.T) {
		r := authenticatedRequest("PATCH", "/v1/opportunities/"+id, `{}`)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()

		UpdateOne(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Nenhum campo")
	})
}
