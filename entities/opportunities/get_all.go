package opportunities

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"net/http"
	"os"

	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// buildListFilter monta o filtro das listagens. Sem filtro explícito de
// created_by, o resultado é restrito ao próprio usuário; created_by de outro
// usuário é permitido como visão somente-leitura do pipeline de um colega.
func buildListFilter(r *http.Request, user schemas.User) (bson.D, bool) {
	filter := bson.D{}

	if funnelID := r.URL.Query().Get("funnel_id"); funnelID != "" {
		objID, err := bson.ObjectIDFromHex(funnelID)
		if err != nil {
			return nil, false
		}
		filter = append(filter, bson.E{Key: "funnel_id", Value: objID})
	}

	if createdBy := r.URL.Query().Get("created_by"); createdBy != "" {
		objID, err := bson.ObjectIDFromHex(createdBy)
		if err != nil {
			return nil, false
		}
		filter = append(filter, bson.E{Key: "created_by", Value: objID})
	} else {
		filter = append(filter, bson.E{Key: "created_by", Value: user.ID})
	}

	return filter, true
}

func GetAll(w http.ResponseWriter, r *http.Request) {
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

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
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

	utils.SendResponse(w, http.StatusOK, "", withRelations, 0)
}
