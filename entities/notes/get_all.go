package notes

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

func GetAll(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	filter := bson.D{{Key: "created_by", Value: user.ID}}

	query := r.URL.Query()
	for _, field := range []string{"contact_id", "company_id", "opportunity_id"} {
		if raw := query.Get(field); raw != "" {
			id, err := bson.ObjectIDFromHex(raw)
			if err != nil {
				utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_NOTE_ID_FORMAT)
				return
			}
			filter = append(filter, bson.E{Key: field, Value: id})
		}
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_NOTES)

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_NOTES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	notes := []schemas.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_NOTES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", notes, 0)
}
