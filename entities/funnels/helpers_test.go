package funnels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/schemas"
	"api/utils"
)

func TestValidateStages(t *testing.T) {
	t.Run("EstagiosCanonicosValidos", func(t *testing.T) {
		assert.NoError(t, validateStages(utils.DefaultFunnelStages()))
	})

	t.Run("ListaVaziaRejeitada", func(t *testing.T) {
		assert.Error(t, validateStages([]schemas.FunnelStage{}))
	})

	t.Run("IDDuplicadoRejeitado", func(t *testing.T) {
		stages := []schemas.FunnelStage{
			{ID: "novo", Name: "Novo"},
			{ID: "novo", Name: "Repetido"},
		}
		assert.Error(t, validateStages(stages))
	})

	t.Run("IDEmBrancoRejeitado", func(t *testing.T) {
		stages := []schemas.FunnelStage{{ID: "  ", Name: "Sem id"}}
		assert.Error(t, validateStages(stages))
	})

	t.Run("NomeEmBrancoRejeitado", func(t *testing.T) {
		stages := []schemas.FunnelStage{{ID: "novo", Name: ""}}
		assert.Error(t, validateStages(stages))
	})
}

func TestPickDefault(t *testing.T) {
	now := time.Now()

	t.Run("ListaVaziaRetornaNil", func(t *testing.T) {
		assert.Nil(t, pickDefault(nil))
	})

	t.Run("MarcadoComoPadraoVence", func(t *testing.T) {
		list := []schemas.Funnel{
			{Name: "Antigo", CreatedAt: now.Add(-48 * time.Hour)},
			{Name: "Padrão", IsDefault: true, CreatedAt: now},
		}

		picked := pickDefault(list)

		require.NotNil(t, picked)
		assert.Equal(t, "Padrão", picked.Name)
	})

	t.Run("SemMarcaGanhaOMaisAntigo", func(t *testing.T) {
		list := []schemas.Funnel{
			{Name: "Recente", CreatedAt: now},
			{Name: "Antigo", CreatedAt: now.Add(-48 * time.Hour)},
		}

		picked := pickDefault(list)

		require.NotNil(t, picked)
		assert.Equal(t, "Antigo", picked.Name)
	})
}
