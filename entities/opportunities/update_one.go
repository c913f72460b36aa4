package opportunities

import (
	"api/database"
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

type updateOpportunityPayload struct {
	Title             *string        `json:"title"`
	Description       *string        `json:"description"`
	Value             *float64       `json:"value"`
	Stage             *string        `json:"stage"`
	FunnelID          *bson.ObjectID `json:"funnel_id"`
	Probability       *float64       `json:"probability"`
	ExpectedCloseDate *time.Time     `json:"expected_close_date"`
	ContactID         *bson.ObjectID `json:"contact_id"`
	CompanyID         *bson.ObjectID `json:"company_id"`
	AssignedTo        *bson.ObjectID `json:"assigned_to"`
}

// UpdateOne aplica somente os campos presentes no corpo; campo ausente
// permanece com o valor anterior.
func UpdateOne(w http.ResponseWriter, r *http.Request) {
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

	payload := &updateOpportunityPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, OPPORTUNITIES_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if payload.Title != nil {
		if strings.TrimSpace(*payload.Title) == "" {
			utils.SendResponse(w, http.StatusBadRequest, "O título da oportunidade é obrigatório", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: *payload.Title})
	}
	if payload.Description != nil {
		updateDoc = append(updateDoc, bson.E{Key: "description", Value: *payload.Description})
	}
	if payload.Value != nil {
		updateDoc = append(updateDoc, bson.E{Key: "value", Value: *payload.Value})
	}
	if payload.Stage != nil {
		if strings.TrimSpace(*payload.Stage) == "" {
			utils.SendResponse(w, http.StatusBadRequest, "O estágio é obrigatório", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "stage", Value: *payload.Stage})
	}
	if payload.FunnelID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "funnel_id", Value: *payload.FunnelID})
	}
	if payload.Probability != nil {
		if *payload.Probability < 0 || *payload.Probability > 100 {
			utils.SendResponse(w, http.StatusBadRequest, "A probabilidade deve estar entre 0 e 100", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "probability", Value: *payload.Probability})
	}
	if payload.ExpectedCloseDate != nil {
		updateDoc = append(updateDoc, bson.E{Key: "expected_close_date", Value: *payload.ExpectedCloseDate})
	}
	if payload.ContactID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "contact_id", Value: *payload.ContactID})
	}
	if payload.CompanyID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "company_id", Value: *payload.CompanyID})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_OPPORTUNITIES)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	result, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Oportunidade não encontrada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
