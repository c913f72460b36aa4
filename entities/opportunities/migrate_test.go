package opportunities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"api/schemas"
	"api/utils"
)

func defaultFunnelFixture() schemas.Funnel {
	return schemas.Funnel{
		ID:        bson.NewObjectID(),
		Name:      utils.DEFAULT_FUNNEL_NAME,
		IsDefault: true,
		Stages:    utils.DefaultFunnelStages(),
	}
}

func setValue(t *testing.T, set bson.D, key string) any {
	t.Helper()
	for _, elem := range set {
		if elem.Key == key {
			return elem.Value
		}
	}
	t.Fatalf("campo %q ausente no patch", key)
	return nil
}

func TestMigrationSet(t *testing.T) {
	funnel := defaultFunnelFixture()

	t.Run("StageVazioRecebeOPrimeiroDoFunil", func(t *testing.T) {
		legacy := schemas.Opportunity{ID: bson.NewObjectID()}

		set := migrationSet(legacy, funnel)

		assert.Equal(t, funnel.ID, setValue(t, set, "funnel_id"))
		assert.Equal(t, "prospecting", setValue(t, set, "stage"))
		assert.Equal(t, 0, setValue(t, set, "order"))
	})

	t.Run("StageExistentePreservado", func(t *testing.T) {
		legacy := schemas.Opportunity{Stage: "negotiation", Order: 4}

		set := migrationSet(legacy, funnel)

		assert.Equal(t, "negotiation", setValue(t, set, "stage"))
		assert.Equal(t, 4, setValue(t, set, "order"))
	})

	t.Run("AplicarDuasVezesProduzOMesmoVinculo", func(t *testing.T) {
		legacy := schemas.Opportunity{Stage: "proposal", Order: 2}

		first := migrationSet(legacy, funnel)

		// Simula o documento após a primeira aplicação.
		legacy.FunnelID = funnel.ID
		second := migrationSet(legacy, funnel)

		assert.Equal(t, setValue(t, first, "funnel_id"), setValue(t, second, "funnel_id"))
		assert.Equal(t, setValue(t, first, "stage"), setValue(t, second, "stage"))
		assert.Equal(t, setValue(t, first, "order"), setValue(t, second, "order"))
	})

	t.Run("FunilSemEstagiosMantemStageVazio", func(t *testing.T) {
		empty := schemas.Funnel{ID: bson.NewObjectID()}
		legacy := schemas.Opportunity{}

		set := migrationSet(legacy, empty)

		require.Equal(t, "", setValue(t, set, "stage"))
	})
}
