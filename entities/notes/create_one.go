package notes

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

	note := &schemas.Note{}
	if err := json.NewDecoder(r.Body).Decode(note); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, NOTES_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(note.Content) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O conteúdo da nota é obrigatório", nil, 0)
		return
	}

	note.ID = bson.NilObjectID
	note.CreatedBy = user.ID
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, note)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_NOTE_TO_MONGODB)
		return
	}

	note.ID = result.InsertedID.(bson.ObjectID)

	utils.SendResponse(w, http.StatusCreated, "", note, 0)
}
