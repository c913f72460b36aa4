package opportunities

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
)

func setupIntegrationDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(utils.MONGODB_URI)
	if uri == "" {
		t.Skip("MONGODB_URI não definido, pulando teste de integração")
	}
	if os.Getenv(utils.ENV) == "" {
		t.Setenv(utils.ENV, utils.ENV_DEVELOPMENT)
	}

	require.NoError(t, database.EnsureIndexes())

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	return client.Database(database.GetDB())
}

func migratedCount(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()

	response := struct {
		Data struct {
			Migrated int `json:"migrated"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data.Migrated
}

func TestMigrateToDefaultFunnelIdempotente(t *testing.T) {
	db := setupIntegrationDB(t)

	user := schemas.User{
		ID:    bson.NewObjectID(),
		Name:  "Vendas",
		Email: "vendas@gonsolutions.com",
	}

	owner := bson.D{{Key: "created_by", Value: user.ID}}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
		defer cancel()
		db.Collection(database.COLLECTION_FUNNELS).DeleteMany(ctx, owner)
		db.Collection(database.COLLECTION_OPPORTUNITIES).DeleteMany(ctx, owner)
	})

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	funnel := schemas.Funnel{
		ID:        bson.NewObjectID(),
		Name:      utils.DEFAULT_FUNNEL_NAME,
		IsDefault: true,
		Stages:    utils.DefaultFunnelStages(),
		CreatedBy: user.ID,
		CreatedAt: time.Now(),
	}
	_, err := db.Collection(database.COLLECTION_FUNNELS).InsertOne(ctx, funnel)
	require.NoError(t, err)

	collection := db.Collection(database.COLLECTION_OPPORTUNITIES)

	semEstagio := schemas.Opportunity{
		ID:        bson.NewObjectID(),
		Title:     "Legada sem estágio",
		CreatedBy: user.ID,
		CreatedAt: time.Now(),
	}
	comEstagio := schemas.Opportunity{
		ID:        bson.NewObjectID(),
		Title:     "Legada com estágio",
		Stage:     "negotiation",
		Order:     4,
		CreatedBy: user.ID,
		CreatedAt: time.Now(),
	}
	_, err = collection.InsertOne(ctx, semEstagio)
	require.NoError(t, err)
	_, err = collection.InsertOne(ctx, comEstagio)
	require.NoError(t, err)

	migrateRequest := func() *http.Request {
		r := httptest.NewRequest("POST", "/v1/opportunities/migrate", nil)
		return r.WithContext(context.WithValue(r.Context(), middlewares.UserContextKey, user))
	}

	first := httptest.NewRecorder()
	MigrateToDefaultFunnel(first, migrateRequest())

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 2, migratedCount(t, first))

	afterFirst := schemas.Opportunity{}
	require.NoError(t, collection.FindOne(ctx, bson.D{{Key: "_id", Value: semEstagio.ID}}).Decode(&afterFirst))
	assert.Equal(t, funnel.ID, afterFirst.FunnelID)
	assert.Equal(t, "prospecting", afterFirst.Stage)

	preservada := schemas.Opportunity{}
	require.NoError(t, collection.FindOne(ctx, bson.D{{Key: "_id", Value: comEstagio.ID}}).Decode(&preservada))
	assert.Equal(t, funnel.ID, preservada.FunnelID)
	assert.Equal(t, "negotiation", preservada.Stage)
	assert.Equal(t, 4, preservada.Order)

	// Segunda execução não encontra mais candidatas.
	second := httptest.NewRecorder()
	MigrateToDefaultFunnel(second, migrateRequest())

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 0, migratedCount(t, second))
}
