package dashboard

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
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
	ownerFilter := bson.D{{Key: "created_by", Value: user.ID}}

	oppCursor, err := db.Collection(database.COLLECTION_OPPORTUNITIES).Find(ctx, ownerFilter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}
	opportunities := []schemas.Opportunity{}
	if err := oppCursor.All(ctx, &opportunities); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}

	activityCursor, err := db.Collection(database.COLLECTION_ACTIVITIES).Find(ctx, ownerFilter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
		return
	}
	activities := []schemas.Activity{}
	if err := activityCursor.All(ctx, &activities); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", computeStats(opportunities, activities, time.Now()), 0)
}
