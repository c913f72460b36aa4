package activities

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

func GetAll(w http.ResponseWriter, r *http.Request) {
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
	collection := db.Collection(database.COLLECTION_ACTIVITIES)

	filter := bson.D{{Key: "created_by", Value: user.ID}}

	if r.URL.Query().Get("overdue_only") == "true" {
		filter = append(filter,
			bson.E{Key: "status", Value: schemas.ACTIVITY_STATUS_PENDING},
			bson.E{Key: "due_date", Value: bson.D{{Key: "$lt", Value: time.Now()}}},
		)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	activities := []schemas.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
		return
	}

	withRelations, err := attachRelationNames(ctx, db, activities)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", withRelations, 0)
}

// attachRelationNames resolve nomes de contato e empresa; referências para
// documentos excluídos resolvem como nulas.
func attachRelationNames(ctx context.Context, db *mongo.Database, activities []schemas.Activity) ([]schemas.ActivityWithRelations, error) {
	contactIDs := []bson.ObjectID{}
	companyIDs := []bson.ObjectID{}
	for _, activity := range activities {
		if !activity.ContactID.IsZero() {
			contactIDs = append(contactIDs, activity.ContactID)
		}
		if !activity.CompanyID.IsZero() {
			companyIDs = append(companyIDs, activity.CompanyID)
		}
	}

	contactNames := map[bson.ObjectID]string{}
	if len(contactIDs) > 0 {
		cursor, err := db.Collection(database.COLLECTION_CONTACTS).Find(ctx,
			bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: contactIDs}}}})
		if err != nil {
			return nil, err
		}
		contacts := []schemas.Contact{}
		if err := cursor.All(ctx, &contacts); err != nil {
			return nil, err
		}
		for _, contact := range contacts {
			contactNames[contact.ID] = contact.FirstName + " " + contact.LastName
		}
	}

	companyNames := map[bson.ObjectID]string{}
	if len(companyIDs) > 0 {
		cursor, err := db.Collection(database.COLLECTION_COMPANIES).Find(ctx,
			bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: companyIDs}}}})
		if err != nil {
			return nil, err
		}
		companies := []schemas.Company{}
		if err := cursor.All(ctx, &companies); err != nil {
			return nil, err
		}
		for _, company := range companies {
			companyNames[company.ID] = company.Name
		}
	}

	result := make([]schemas.ActivityWithRelations, 0, len(activities))
	for _, activity := range activities {
		item := schemas.ActivityWithRelations{Activity: activity}
		if name, ok := contactNames[activity.ContactID]; ok {
			item.ContactName = &name
		}
		if name, ok := companyNames[activity.CompanyID]; ok {
			item.CompanyName = &name
		}
		result = append(result, item)
	}

	return result, nil
}
