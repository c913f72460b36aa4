package funnels

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
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

func integrationUser(t *testing.T, db *mongo.Database) schemas.User {
	t.Helper()

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

	return user
}

func requestAs(user schemas.User, method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), middlewares.UserContextKey, user))
}

func countDefaults(t *testing.T, db *mongo.Database, userID bson.ObjectID) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	count, err := db.Collection(database.COLLECTION_FUNNELS).CountDocuments(ctx, bson.D{
		{Key: "created_by", Value: userID},
		{Key: "is_default", Value: true},
	})
	require.NoError(t, err)
	return count
}

func TestDeleteOneFunilComOportunidades(t *testing.T) {
	db := setupIntegrationDB(t)
	user := integrationUser(t, db)

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	funnel := schemas.Funnel{
		ID:        bson.NewObjectID(),
		Name:      "Funil com cards",
		IsDefault: true,
		Stages:    utils.DefaultFunnelStages(),
		CreatedBy: user.ID,
		CreatedAt: time.Now(),
	}
	_, err := db.Collection(database.COLLECTION_FUNNELS).InsertOne(ctx, funnel)
	require.NoError(t, err)

	opportunity := schemas.Opportunity{
		ID:        bson.NewObjectID(),
		Title:     "Proposta em andamento",
		Stage:     "prospecting",
		FunnelID:  funnel.ID,
		Order:     1,
		CreatedBy: user.ID,
		CreatedAt: time.Now(),
	}
	_, err = db.Collection(database.COLLECTION_OPPORTUNITIES).InsertOne(ctx, opportunity)
	require.NoError(t, err)

	r := requestAs(user, "DELETE", "/v1/funnels/"+funnel.ID.Hex(), "")
	r.SetPathValue("id", funnel.ID.Hex())
	w := httptest.NewRecorder()

	DeleteOne(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "oportunidades vinculadas")

	// Os dois documentos permanecem intactos.
	funnelCount, err := db.Collection(database.COLLECTION_FUNNELS).CountDocuments(ctx,
		bson.D{{Key: "_id", Value: funnel.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), funnelCount)

	oppCount, err := db.Collection(database.COLLECTION_OPPORTUNITIES).CountDocuments(ctx,
		bson.D{{Key: "_id", Value: opportunity.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), oppCount)
}

func TestCreateDefaultConcorrente(t *testing.T) {
	db := setupIntegrationDB(t)
	user := integrationUser(t, db)

	const callers = 4
	codes := make([]int, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			CreateDefault(w, requestAs(user, "POST", "/v1/funnels/default", ""))
			codes[slot] = w.Result().StatusCode
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Contains(t, []int{http.StatusOK, http.StatusCreated}, code)
	}

	assert.Equal(t, int64(1), countDefaults(t, db, user.ID))

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	total, err := db.Collection(database.COLLECTION_FUNNELS).CountDocuments(ctx,
		bson.D{{Key: "created_by", Value: user.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCreateOneDisputaPeloPadrao(t *testing.T) {
	db := setupIntegrationDB(t)
	user := integrationUser(t, db)

	const callers = 2
	codes := make([]int, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"name":"Funil %d","stages":[{"id":"novo","name":"Novo"}]}`, slot)
			w := httptest.NewRecorder()
			CreateOne(w, requestAs(user, "POST", "/v1/funnels", body))
			codes[slot] = w.Result().StatusCode
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}

	// Ambas as requisições viram zero funis existentes; o índice único parcial
	// deixa apenas uma vencer como padrão.
	assert.Equal(t, int64(1), countDefaults(t, db, user.ID))

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	total, err := db.Collection(database.COLLECTION_FUNNELS).CountDocuments(ctx,
		bson.D{{Key: "created_by", Value: user.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
