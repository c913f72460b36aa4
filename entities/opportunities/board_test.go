package opportunities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/schemas"
)

func opp(stage string, order int, createdAt time.Time) schemas.OpportunityWithRelations {
	return schemas.OpportunityWithRelations{
		Opportunity: schemas.Opportunity{
			Stage:     stage,
			Order:     order,
			CreatedAt: createdAt,
		},
	}
}

func TestNextOrder(t *testing.T) {
	t.Run("ColunaVazia", func(t *testing.T) {
		assert.Equal(t, 1, nextOrder([]schemas.Opportunity{}))
	})

	t.Run("SegueMaximoNaoContagem", func(t *testing.T) {
		// Exclusões deixam buracos: 3 cards com orders 1, 5, 7.
		existing := []schemas.Opportunity{
			{Order: 1},
			{Order: 5},
			{Order: 7},
		}
		assert.Equal(t, 8, nextOrder(existing))
	})

	t.Run("OrderNegativoContaComoZero", func(t *testing.T) {
		existing := []schemas.Opportunity{{Order: -3}}
		assert.Equal(t, 1, nextOrder(existing))
	})

	t.Run("InsercoesSequenciaisSaoMonotonicas", func(t *testing.T) {
		existing := []schemas.Opportunity{}
		last := 0
		for i := 0; i < 10; i++ {
			next := nextOrder(existing)
			assert.Greater(t, next, last)
			existing = append(existing, schemas.Opportunity{Order: next})
			last = next
		}
	})
}

func TestGroupByStage(t *testing.T) {
	now := time.Now()

	t.Run("CadaOportunidadeApareceUmaVez", func(t *testing.T) {
		list := []schemas.OpportunityWithRelations{
			opp("prospecting", 1, now),
			opp("prospecting", 2, now),
			opp("proposal", 1, now),
			opp("closed_won", 3, now),
		}

		grouped := groupByStage(list)

		total := 0
		for _, column := range grouped {
			total += len(column)
		}
		assert.Equal(t, len(list), total)
		assert.Len(t, grouped["prospecting"], 2)
		assert.Len(t, grouped["proposal"], 1)
		assert.Len(t, grouped["closed_won"], 1)
	})

	t.Run("ListaVaziaProduzMapaVazio", func(t *testing.T) {
		grouped := groupByStage(nil)
		assert.Empty(t, grouped)
	})

	t.Run("StageMovidoApareceNaNovaColuna", func(t *testing.T) {
		moved := opp("negotiation", 1, now)
		grouped := groupByStage([]schemas.OpportunityWithRelations{moved})
		require.Len(t, grouped["negotiation"], 1)
		assert.NotContains(t, grouped, "prospecting")
	})
}

func TestSortStageColumn(t *testing.T) {
	now := time.Now()

	t.Run("OrderCrescente", func(t *testing.T) {
		column := []schemas.OpportunityWithRelations{
			opp("proposal", 3, now),
			opp("proposal", 1, now),
			opp("proposal", 2, now),
		}

		sortStageColumn(column)

		assert.Equal(t, 1, column[0].Order)
		assert.Equal(t, 2, column[1].Order)
		assert.Equal(t, 3, column[2].Order)
	})

	t.Run("EmpateDecididoPeloMaisRecente", func(t *testing.T) {
		older := opp("proposal", 1, now.Add(-time.Hour))
		newer := opp("proposal", 1, now)

		column := []schemas.OpportunityWithRelations{older, newer}
		sortStageColumn(column)

		assert.True(t, column[0].CreatedAt.After(column[1].CreatedAt))
	})

	t.Run("OrderAusenteVaiParaOInicio", func(t *testing.T) {
		column := []schemas.OpportunityWithRelations{
			opp("proposal", 2, now),
			opp("proposal", 0, now.Add(-time.Minute)),
		}

		sortStageColumn(column)

		assert.Equal(t, 0, column[0].Order)
	})
}
