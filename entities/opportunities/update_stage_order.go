package opportunities

import (
	"api/database"
	"api/entities/funnels"
	"api/middlewares"
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

type updateStageOrderPayload struct {
	Stage string `json:"stage"`
	Order int    `json:"order"`
}

// UpdateStageAndOrder é a primitiva do drag-and-drop: grava stage e order
// exatamente como recebidos, sem renumerar os vizinhos. A UI calcula a
// posição de destino.
func UpdateStageAndOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_OPPORTUNITY_ID_FORMAT)
		return
	}

	payload := &updateStageOrderPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, OPPORTUNITIES_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(payload.Stage) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O estágio é obrigatório", nil, 0)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_OPPORTUNITIES)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "stage", Value: payload.Stage},
		{Key: "order", Value: payload.Order},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Oportunidade não encontrada", nil, 0)
		return
	}

	funnels.BroadcastBoardUpdate("opportunity_moved", map[string]any{
		"id":    id.Hex(),
		"stage": payload.Stage,
		"order": payload.Order,
	}, "Oportunidade movida no board")

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
