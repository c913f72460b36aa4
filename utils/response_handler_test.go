package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/schemas"
)

func TestSendResponse(t *testing.T) {
	t.Run("SemMensagemESemDadosRetornaCorpoVazio", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendResponse(w, http.StatusOK, "", nil, 0)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("SomenteMensagem", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		response := schemas.ApiResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Funil não encontrado", response.Message)
		assert.Nil(t, response.Data)
	})

	t.Run("SomenteDados", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendResponse(w, http.StatusOK, "", map[string]int{"migrated": 3}, 0)

		response := schemas.ApiResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.Message)
		assert.NotNil(t, response.Data)
	})

	t.Run("CodigoInternoSobrepoeAMensagem", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendResponse(w, http.StatusBadGateway, "ignorada", nil, CANNOT_CONNECT_TO_MONGODB)

		assert.Equal(t, http.StatusBadGateway, w.Code)

		response := schemas.ApiResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Message, "Cod:")
		assert.NotContains(t, response.Message, "ignorada")
	})
}
