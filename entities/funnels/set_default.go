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

// SetDefault limpa a marca dos demais funis do usuário e depois marca o alvo.
// As duas escritas não são atômicas entre si; o índice único parcial garante
// que o estado final nunca tem dois padrões.
func SetDefault(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_FUNNEL_ID_FORMAT)
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

	ownedFilter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	funnel := &schemas.Funnel{}
	err = collection.FindOne(ctx, ownedFilter).Decode(funnel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
		} else {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB)
		}
		return
	}

	_, err = collection.UpdateMany(ctx,
		bson.D{
			{Key: "created_by", Value: user.ID},
			{Key: "is_default", Value: true},
			{Key: "_id", Value: bson.D{{Key: "$ne", Value: id}}},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_default", Value: false},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_FUNNEL_IN_MONGODB)
		return
	}

	_, err = collection.UpdateOne(ctx, ownedFilter,
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_default", Value: true},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_FUNNEL_IN_MONGODB)
		return
	}

	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  "funnel_default_changed",
		Payload: id.Hex(),
		Details: "Funil padrão alterado",
	})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
