package funnels

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type updateFunnelPayload struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Stages      *[]schemas.FunnelStage `json:"stages"`
}

func UpdateOne(w http.ResponseWriter, r *http.Request) {
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

	payload := &updateFunnelPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, FUNNELS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if payload.Name != nil && *payload.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: *payload.Name})
	}
	if payload.Description != nil {
		updateDoc = append(updateDoc, bson.E{Key: "description", Value: *payload.Description})
	}
	if payload.Stages != nil {
		if err := validateStages(*payload.Stages); err != nil {
			utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "stages", Value: *payload.Stages})
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Nenhum campo para atualizar foi fornecido", nil, 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

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

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	result, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_FUNNEL_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
		return
	}

	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  "funnel_updated",
		Payload: id.Hex(),
		Details: "Funil atualizado",
	})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
