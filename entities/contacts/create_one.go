package contacts

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

	contact := &schemas.Contact{}
	if err := json.NewDecoder(r.Body).Decode(contact); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(contact.FirstName) == "" || strings.TrimSpace(contact.LastName) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Nome e sobrenome do contato são obrigatórios", nil, 0)
		return
	}

	if contact.Status == "" {
		contact.Status = schemas.CONTACT_STATUS_ACTIVE
	}
	if !isValidStatus(contact.Status) {
		utils.SendResponse(w, http.StatusBadRequest, "Status de contato inválido", nil, 0)
		return
	}

	contact.ID = bson.NilObjectID
	contact.CreatedBy = user.ID
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, contact)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_CONTACT_TO_MONGODB)
		return
	}

	contact.ID = result.InsertedID.(bson.ObjectID)

	utils.SendResponse(w, http.StatusCreated, "", contact, 0)
}
