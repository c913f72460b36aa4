package users

import (
	"api/database"
	"api/middlewares"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetStats conta os documentos do sistema inteiro, sem recorte por dono.
func GetStats(w http.ResponseWriter, r *http.Request) {
	_, ok := middlewares.GetAuthUser(r)
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

	collections := map[string]string{
		"users":         database.COLLECTION_USERS,
		"funnels":       database.COLLECTION_FUNNELS,
		"opportunities": database.COLLECTION_OPPORTUNITIES,
		"companies":     database.COLLECTION_COMPANIES,
		"contacts":      database.COLLECTION_CONTACTS,
		"activities":    database.COLLECTION_ACTIVITIES,
		"notes":         database.COLLECTION_NOTES,
	}

	stats := map[string]int64{}
	for key, name := range collections {
		count, err := db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_COUNT_DOCUMENTS_IN_MONGODB)
			return
		}
		stats[key] = count
	}

	utils.SendResponse(w, http.StatusOK, "", stats, 0)
}
