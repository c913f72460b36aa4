package opportunities

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"api/schemas"
)

func filterValue(filter bson.D, key string) (any, bool) {
	for _, elem := range filter {
		if elem.Key == key {
			return elem.Value, true
		}
	}
	return nil, false
}

func TestBuildListFilter(t *testing.T) {
	user := schemas.User{ID: bson.NewObjectID()}

	t.Run("SemParametrosRestringeAoProprioUsuario", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/opportunities", nil)

		filter, ok := buildListFilter(r, user)

		require.True(t, ok)
		createdBy, found := filterValue(filter, "created_by")
		require.True(t, found)
		assert.Equal(t, user.ID, createdBy)
	})

	t.Run("FunnelIDRestringeAoFunil", func(t *testing.T) {
		funnelID := bson.NewObjectID()
		r := httptest.NewRequest("GET", "/v1/opportunities?funnel_id="+funnelID.Hex(), nil)

		filter, ok := buildListFilter(r, user)

		require.True(t, ok)
		value, found := filterValue(filter, "funnel_id")
		require.True(t, found)
		assert.Equal(t, funnelID, value)
	})

	t.Run("CreatedByExplicitoSubstituiORecorteProprio", func(t *testing.T) {
		colleague := bson.NewObjectID()
		r := httptest.NewRequest("GET", "/v1/opportunities?created_by="+colleague.Hex(), nil)

		filter, ok := buildListFilter(r, user)

		require.True(t, ok)
		value, found := filterValue(filter, "created_by")
		require.True(t, found)
		assert.Equal(t, colleague, value)
	})

	t.Run("IDMalformadoRejeitado", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/opportunities?funnel_id=nao-e-hex", nil)

		_, ok := buildListFilter(r, user)

		assert.False(t, ok)
	})
}
