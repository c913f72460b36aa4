package funnels

import (
	"api/database"
	"api/middlewares"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func DeleteOne(w http.ResponseWriter, r *http.Request) {
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

	db := mongoClient.Database(database.GetDB())
	collection := db.Collection(database.COLLECTION_FUNNELS)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	err = collection.FindOne(ctx, filter).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
		} else {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB)
		}
		return
	}

	// Funil com oportunidades vinculadas não pode ser excluído.
	opportunities := db.Collection(database.COLLECTION_OPPORTUNITIES)
	count, err := opportunities.CountDocuments(ctx, bson.D{{Key: "funnel_id", Value: id}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_COUNT_OPPORTUNITIES_IN_MONGODB)
		return
	}
	if count > 0 {
		utils.SendResponse(w, http.StatusConflict, "Não é possível excluir um funil com oportunidades vinculadas", nil, 0)
		return
	}

	result, err := collection.DeleteOne(ctx, filter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_DELETE_FUNNEL_FROM_MONGODB)
		return
	}

	if result.DeletedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
		return
	}

	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  "funnel_deleted",
		Payload: id.Hex(),
		Details: "Funil excluído",
	})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
