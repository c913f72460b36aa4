package companies

import (
	"api/database"
	"api/middlewares"
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

type updateCompanyPayload struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Website  *string `json:"website"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Size     *string `json:"size"`
	Notes    *string `json:"notes"`
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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_COMPANY_ID_FORMAT)
		return
	}

	payload := &updateCompanyPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, COMPANIES_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if payload.Name != nil && *payload.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: *payload.Name})
	}
	if payload.Industry != nil {
		updateDoc = append(updateDoc, bson.E{Key: "industry", Value: *payload.Industry})
	}
	if payload.Website != nil {
		updateDoc = append(updateDoc, bson.E{Key: "website", Value: *payload.Website})
	}
	if payload.Phone != nil {
		updateDoc = append(updateDoc, bson.E{Key: "phone", Value: *payload.Phone})
	}
	if payload.Email != nil {
		updateDoc = append(updateDoc, bson.E{Key: "email", Value: *payload.Email})
	}
	if payload.Address != nil {
		updateDoc = append(updateDoc, bson.E{Key: "address", Value: *payload.Address})
	}
	if payload.Size != nil {
		updateDoc = append(updateDoc, bson.E{Key: "size", Value: *payload.Size})
	}
	if payload.Notes != nil {
		updateDoc = append(updateDoc, bson.E{Key: "notes", Value: *payload.Notes})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_COMPANIES)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	result, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_COMPANY_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Empresa não encontrada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
