package activities

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

func CreateOne(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	activity := &schemas.Activity{}
	if err := json.NewDecoder(r.Body).Decode(activity); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, ACTIVITIES_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(activity.Title) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O título da atividade é obrigatório", nil, 0)
		return
	}

	if !isValidType(activity.Type) {
		utils.SendResponse(w, http.StatusBadRequest, "Tipo de atividade inválido", nil, 0)
		return
	}

	activity.ID = bson.NilObjectID
	activity.Status = schemas.ACTIVITY_STATUS_PENDING
	activity.CompletedDate = nil
	activity.AssignedTo = user.ID
	activity.CreatedBy = user.ID
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_ACTIVITIES)

	result, err := collection.InsertOne(ctx, activity)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_ACTIVITY_TO_MONGODB)
		return
	}

	activity.ID = result.InsertedID.(bson.ObjectID)

	utils.SendResponse(w, http.StatusCreated, "", activity, 0)
}
