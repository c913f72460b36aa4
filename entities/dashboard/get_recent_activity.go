package dashboard

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

const RECENT_ACTIVITY_LIMIT = 10

// GetRecentActivity lista as últimas atividades atribuídas ao usuário, com
// os nomes de contato e empresa resolvidos para exibição direta no painel.
func GetRecentActivity(w http.ResponseWriter, r *http.Request) {
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

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(RECENT_ACTIVITY_LIMIT)

	cursor, err := db.Collection(database.COLLECTION_ACTIVITIES).Find(ctx,
		bson.D{{Key: "assigned_to", Value: user.ID}}, findOptions)
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
		contactCursor, err := db.Collection(database.COLLECTION_CONTACTS).Find(ctx,
			bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: contactIDs}}}})
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
			return
		}
		contacts := []schemas.Contact{}
		if err := contactCursor.All(ctx, &contacts); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
			return
		}
		for _, contact := range contacts {
			contactNames[contact.ID] = contact.FirstName + " " + contact.LastName
		}
	}

	companyNames := map[bson.ObjectID]string{}
	if len(companyIDs) > 0 {
		companyCursor, err := db.Collection(database.COLLECTION_COMPANIES).Find(ctx,
			bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: companyIDs}}}})
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
			return
		}
		companies := []schemas.Company{}
		if err := companyCursor.All(ctx, &companies); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_ACTIVITIES_IN_MONGODB)
			return
		}
		for _, company := range companies {
			companyNames[company.ID] = company.Name
		}
	}

	recent := make([]schemas.ActivityWithRelations, 0, len(activities))
	for _, activity := range activities {
		item := schemas.ActivityWithRelations{Activity: activity}
		if name, ok := contactNames[activity.ContactID]; ok {
			item.ContactName = &name
		}
		if name, ok := companyNames[activity.CompanyID]; ok {
			item.CompanyName = &name
		}
		recent = append(recent, item)
	}

	utils.SendResponse(w, http.StatusOK, "", recent, 0)
}
