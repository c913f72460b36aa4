package contacts

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

type updateContactPayload struct {
	FirstName *string        `json:"first_name"`
	LastName  *string        `json:"last_name"`
	Email     *string        `json:"email"`
	Phone     *string        `json:"phone"`
	Position  *string        `json:"position"`
	CompanyID *bson.ObjectID `json:"company_id"`
	Status    *string        `json:"status"`
	Notes     *string        `json:"notes"`
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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_CONTACT_ID_FORMAT)
		return
	}

	payload := &updateContactPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if payload.FirstName != nil && *payload.FirstName != "" {
		updateDoc = append(updateDoc, bson.E{Key: "first_name", Value: *payload.FirstName})
	}
	if payload.LastName != nil && *payload.LastName != "" {
		updateDoc = append(updateDoc, bson.E{Key: "last_name", Value: *payload.LastName})
	}
	if payload.Email != nil {
		updateDoc = append(updateDoc, bson.E{Key: "email", Value: *payload.Email})
	}
	if payload.Phone != nil {
		updateDoc = append(updateDoc, bson.E{Key: "phone", Value: *payload.Phone})
	}
	if payload.Position != nil {
		updateDoc = append(updateDoc, bson.E{Key: "position", Value: *payload.Position})
	}
	if payload.CompanyID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "company_id", Value: *payload.CompanyID})
	}
	if payload.Status != nil {
		if !isValidStatus(*payload.Status) {
			utils.SendResponse(w, http.StatusBadRequest, "Status de contato inválido", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "status", Value: *payload.Status})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CONTACTS)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	result, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_UPDATE_CONTACT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Contato não encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
