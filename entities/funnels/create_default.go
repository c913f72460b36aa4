package funnels

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateDefault é idempotente: se o usuário já tem funis, devolve o padrão
// atual sem gravar nada. A UI chama este endpoint em todo carregamento do
// pipeline, então chamadas repetidas e concorrentes são o caso normal.
func CreateDefault(w http.ResponseWriter, r *http.Request) {
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNELS)

	ownerFilter := bson.D{{Key: "created_by", Value: user.ID}}

	cursor, err := collection.Find(ctx, ownerFilter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_FUNNELS_IN_MONGODB)
		return
	}
	existing := []schemas.Funnel{}
	if err := cursor.All(ctx, &existing); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_FUNNELS_IN_MONGODB)
		return
	}

	if len(existing) > 0 {
		utils.SendResponse(w, http.StatusOK, "", pickDefault(existing), 0)
		return
	}

	funnel := &schemas.Funnel{
		Name:        utils.DEFAULT_FUNNEL_NAME,
		Description: utils.DEFAULT_FUNNEL_DESCRIPTION,
		IsDefault:   true,
		Stages:      utils.DefaultFunnelStages(),
		CreatedBy:   user.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result, err := collection.InsertOne(ctx, funnel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Perdeu a corrida para outra requisição do mesmo usuário:
			// devolve o funil padrão que venceu.
			winner := &schemas.Funnel{}
			findErr := collection.FindOne(ctx, bson.D{
				{Key: "created_by", Value: user.ID},
				{Key: "is_default", Value: true},
			}).Decode(winner)
			if findErr == nil {
				utils.SendResponse(w, http.StatusOK, "", winner, 0)
				return
			}
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_FUNNEL_TO_MONGODB)
		return
	}

	funnel.ID = result.InsertedID.(bson.ObjectID)

	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  "funnel_created",
		Payload: funnel,
		Details: "Funil padrão criado",
	})

	utils.SendResponse(w, http.StatusCreated, "", funnel, 0)
}
