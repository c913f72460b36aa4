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
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type updateActivityPayload struct {
	Type          *string        `json:"type"`
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Status        *string        `json:"status"`
	DueDate       *time.Time     `json:"due_date"`
	ContactID     *bson.ObjectID `json:"contact_id"`
	CompanyID     *bson.ObjectID `json:"company_id"`
	OpportunityID *bson.ObjectID `json:"opportunity_id"`
	AssignedTo    *bson.ObjectID `json:"assigned_to"`
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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_ACTIVITY_ID_FORMAT)
		return
	}

	payload := &updateActivityPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, ACTIVITIES_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if payload.Type != nil {
		if !isValidType(*payload.Type) {
			utils.SendResponse(w, http.StatusBadRequest, "Tipo de atividade inválido", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "type", Value: *payload.Type})
	}
	if payload.Title != nil && *payload.Title != "" {
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: *payload.Title})
	}
	if payload.Description != nil {
		updateDoc = append(updateDoc, bson.E{Key: "description", Value: *payload.Description})
	}
	if payload.Status != nil {
		if !isValidStatus(*payload.Status) {
			utils.SendResponse(w, http.StatusBadRequest, "Status de atividade inválido", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "status", Value: *payload.Status})
		if *payload.Status == schemas.ACTIVITY_STATUS_COMPLETED {
			updateDoc = append(updateDoc, bson.E{Key: "completed_date", Value: time.Now()})
		}
	}
	if payload.DueDate != nil {
		updateDoc = append(updateDoc, bson.E{Key: "due_date", Value: *payload.DueDate})
	}
	if payload.ContactID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "contact_id", Value: *payload.ContactID})
	}
	if payload.CompanyID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "company_id", Value: *payload.CompanyID})
	}
	if payload.OpportunityID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "opportunity_id", Value: *payload.OpportunityID})
	}
	if payload.AssignedTo != nil {
		updateDoc = append(updateDoc, bson.E{Key: "assigned_to", Value: *payload.AssignedTo})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_ACTIVITIES)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	result, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_ACTIVITY_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Atividade não encontrada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
