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
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type createFunnelPayload struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Stages      []schemas.FunnelStage `json:"stages"`
}

func CreateOne(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	payload := &createFunnelPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, FUNNELS_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O nome do funil é obrigatório", nil, 0)
		return
	}

	if err := validateStages(payload.Stages); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
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

	existing, err := collection.CountDocuments(ctx, bson.D{{Key: "created_by", Value: user.ID}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_FUNNELS_IN_MONGODB)
		return
	}

	funnel := &schemas.Funnel{
		Name:        payload.Name,
		Description: payload.Description,
		Stages:      payload.Stages,
		IsDefault:   existing == 0,
		CreatedBy:   user.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result, err := collection.InsertOne(ctx, funnel)
	if err != nil && mongo.IsDuplicateKeyError(err) && funnel.IsDefault {
		// Outra requisição criou o funil padrão entre a contagem e o insert.
		// O índice único segura a invariante; insere este como não-padrão.
		funnel.IsDefault = false
		result, err = collection.InsertOne(ctx, funnel)
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_FUNNEL_TO_MONGODB)
		return
	}

	funnel.ID = result.InsertedID.(bson.ObjectID)

	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  "funnel_created",
		Payload: funnel,
		Details: "Novo funil criado",
	})

	utils.SendResponse(w, http.StatusCreated, "", funnel, 0)
}
