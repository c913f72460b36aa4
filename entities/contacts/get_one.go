package contacts

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetOne(w http.ResponseWriter, r *http.Request) {
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

	db := mongoClient.Database(database.GetDB())
	collection := db.Collection(database.COLLECTION_CONTACTS)

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "created_by", Value: user.ID},
	}

	contact := schemas.Contact{}
	err = collection.FindOne(ctx, filter).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Contato não encontrado", nil, 0)
		} else {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_CONTACT_BY_ID_IN_MONGODB)
		}
		return
	}

	withCompany, err := attachCompanyNames(ctx, db, []schemas.Contact{contact})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_CONTACT_BY_ID_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", withCompany[0], 0)
}
