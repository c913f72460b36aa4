package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFunnelStages(t *testing.T) {
	stages := DefaultFunnelStages()

	require.Len(t, stages, 6)

	expectedIDs := []string{
		"prospecting",
		"qualification",
		"proposal",
		"negotiation",
		STAGE_CLOSED_WON,
		STAGE_CLOSED_LOST,
	}

	for i, stage := range stages {
		assert.Equal(t, expectedIDs[i], stage.ID)
		assert.Equal(t, i+1, stage.Order)
		assert.NotEmpty(t, stage.Name)
		assert.NotEmpty(t, stage.Color)
	}
}

func TestDefaultFunnelStagesReturnsFreshSlice(t *testing.T) {
	first := DefaultFunnelStages()
	first[0].Name = "alterado"

	second := DefaultFunnelStages()
	assert.Equal(t, "Prospecção", second[0].Name)
}

func TestIsValidUserEmail(t *testing.T) {
	t.Run("EmailDaLista", func(t *testing.T) {
		assert.True(t, IsValidUserEmail("vendas@gonsolutions.com"))
	})

	t.Run("CaixaAltaEEspacosNormalizados", func(t *testing.T) {
		assert.True(t, IsValidUserEmail("  Vendas@GonSolutions.com  "))
	})

	t.Run("DominioCertoForaDaLista", func(t *testing.T) {
		assert.False(t, IsValidUserEmail("estagiario@gonsolutions.com"))
	})

	t.Run("DominioErrado", func(t *testing.T) {
		assert.False(t, IsValidUserEmail("vendas@outraempresa.com"))
	})

	t.Run("Vazio", func(t *testing.T) {
		assert.False(t, IsValidUserEmail(""))
	})
}
