package companies

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

	company := &schemas.Company{}
	if err := json.NewDecoder(r.Body).Decode(company); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, COMPANIES_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(company.Name) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O nome da empresa é obrigatório", nil, 0)
		return
	}

	company.ID = bson.NilObjectID
	company.CreatedBy = user.ID
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, company)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_COMPANY_TO_MONGODB)
		return
	}

	company.ID = result.InsertedID.(bson.ObjectID)

	utils.SendResponse(w, http.StatusCreated, "", company, 0)
}
