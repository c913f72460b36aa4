package opportunities

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetByStage devolve o board: um mapa estágio → oportunidades ordenadas.
// Filtro sem resultados devolve um mapa vazio, não um erro.
func GetByStage(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	filter, ok := buildListFilter(r, user)
	if !ok {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_OPPORTUNITY_ID_FORMAT)
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
	collection := db.Collection(database.COLLECTION_OPPORTUNITIES)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	opportunities := []schemas.Opportunity{}
	if err := cursor.All(ctx, &opportunities); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}

	withRelations, err := resolveRelations(ctx, db, opportunities)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_RESOLVE_OPPORTUNITY_RELATIONS)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", groupByStage(withRelations), 0)
}
