package users

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CleanupInvalid remove usuários não autorizados e transfere as
// oportunidades deles para o primeiro usuário autorizado encontrado.
func CleanupInvalid(w http.ResponseWriter, r *http.Request) {
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
	usersCollection := db.Collection(database.COLLECTION_USERS)

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := usersCollection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_USERS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	allUsers := []schemas.User{}
	if err := cursor.All(ctx, &allUsers); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_USERS_IN_MONGODB)
		return
	}

	invalid := filterInvalidUsers(allUsers)
	if len(invalid) == 0 {
		utils.SendResponse(w, http.StatusOK, "Nenhum usuário inválido encontrado", map[string]int{
			"deleted":     0,
			"transferred": 0,
		}, 0)
		return
	}

	target, hasTarget := firstValidUser(allUsers)
	if !hasTarget {
		utils.SendResponse(w, http.StatusConflict, "Não há usuário autorizado para receber as oportunidades transferidas", nil, 0)
		return
	}

	invalidIDs := make([]bson.ObjectID, 0, len(invalid))
	for _, user := range invalid {
		invalidIDs = append(invalidIDs, user.ID)
	}

	opportunitiesCollection := db.Collection(database.COLLECTION_OPPORTUNITIES)

	transferFilter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "created_by", Value: bson.D{{Key: "$in", Value: invalidIDs}}}},
		bson.D{{Key: "assigned_to", Value: bson.D{{Key: "$in", Value: invalidIDs}}}},
	}}}

	transferUpdate := bson.D{{Key: "$set", Value: bson.D{
		{Key: "created_by", Value: target.ID},
		{Key: "assigned_to", Value: target.ID},
		{Key: "updated_at", Value: time.Now()},
	}}}

	transferResult, err := opportunitiesCollection.UpdateMany(ctx, transferFilter, transferUpdate)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_TRANSFER_OPPORTUNITIES_IN_MONGODB)
		return
	}

	deleteResult, err := usersCollection.DeleteMany(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: invalidIDs}}}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_DELETE_USERS_FROM_MONGODB)
		return
	}

	log.Info().
		Int64("deleted", deleteResult.DeletedCount).
		Int64("transferred", transferResult.ModifiedCount).
		Str("target_email", target.Email).
		Msg("limpeza de usuários inválidos concluída")

	message := fmt.Sprintf("%d usuário(s) removido(s) e %d oportunidade(s) transferida(s) para %s",
		deleteResult.DeletedCount, transferResult.ModifiedCount, target.Email)

	utils.SendResponse(w, http.StatusOK, message, map[string]int64{
		"deleted":     deleteResult.DeletedCount,
		"transferred": transferResult.ModifiedCount,
	}, 0)
}
