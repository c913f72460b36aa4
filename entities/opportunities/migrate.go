package opportunities

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// migrationSet monta o patch de uma oportunidade legada: vincula o funil
// padrão, mantém o stage existente (senão o primeiro do funil) e mantém a
// ordem existente (senão 0). Aplicado duas vezes produz o mesmo documento.
func migrationSet(opp schemas.Opportunity, funnel schemas.Funnel) bson.D {
	stage := opp.Stage
	if stage == "" && len(funnel.Stages) > 0 {
		stage = funnel.Stages[0].ID
	}

	return bson.D{
		{Key: "funnel_id", Value: funnel.ID},
		{Key: "stage", Value: stage},
		{Key: "order", Value: opp.Order},
		{Key: "updated_at", Value: time.Now()},
	}
}

// MigrateToDefaultFunnel vincula ao funil padrão as oportunidades criadas
// antes do conceito de funil existir. Idempotente e seguro de chamar em todo
// carregamento do board: após a primeira execução o conjunto alvo é vazio.
// Interrompida no meio, a próxima chamada retoma de onde parou.
func MigrateToDefaultFunnel(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(database.GetDB())

	defaultFunnel, err := findDefaultFunnel(ctx, db, user.ID)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_DEFAULT_FUNNEL_IN_MONGODB)
		return
	}
	if defaultFunnel == nil {
		utils.SendResponse(w, http.StatusOK, "", map[string]int{"migrated": 0}, 0)
		return
	}

	collection := db.Collection(database.COLLECTION_OPPORTUNITIES)

	legacyFilter := bson.D{
		{Key: "created_by", Value: user.ID},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "funnel_id", Value: bson.D{{Key: "$exists", Value: false}}}},
			bson.D{{Key: "funnel_id", Value: bson.NilObjectID}},
		}},
	}

	cursor, err := collection.Find(ctx, legacyFilter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}
	legacy := []schemas.Opportunity{}
	if err := cursor.All(ctx, &legacy); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}

	migrated := 0
	for _, opp := range legacy {
		_, err := collection.UpdateOne(ctx,
			bson.D{{Key: "_id", Value: opp.ID}},
			bson.D{{Key: "$set", Value: migrationSet(opp, *defaultFunnel)}},
		)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_MIGRATE_OPPORTUNITIES_IN_MONGODB)
			return
		}
		migrated++
	}

	if migrated > 0 {
		log.Info().
			Str("user", user.Email).
			Int("migrated", migrated).
			Msg("oportunidades legadas vinculadas ao funil padrão")
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]int{"migrated": migrated}, 0)
}
