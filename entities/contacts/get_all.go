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
	collection := db.Collection(database.COLLECTION_CONTACTS)

	filter := bson.D{{Key: "created_by", Value: user.ID}}

	if companyID := r.URL.Query().Get("company_id"); companyID != "" {
		objID, err := bson.ObjectIDFromHex(companyID)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, INVALID_CONTACT_ID_FORMAT)
			return
		}
		filter = append(filter, bson.E{Key: "company_id", Value: objID})
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	contacts := []schemas.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}

	withCompany, err := attachCompanyNames(ctx, db, contacts)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", withCompany, 0)
}

// attachCompanyNames resolve o nome da empresa de cada contato. Empresa já
// excluída resolve como nula.
func attachCompanyNames(ctx context.Context, db *mongo.Database, contacts []schemas.Contact) ([]schemas.ContactWithCompany, error) {
	companyIDs := []bson.ObjectID{}
	for _, contact := range contacts {
		if !contact.CompanyID.IsZero() {
			companyIDs = append(companyIDs, contact.CompanyID)
		}
	}

	names := map[bson.ObjectID]string{}
	if len(companyIDs) > 0 {
		cursor, err := db.Collection(database.COLLECTION_COMPANIES).Find(ctx,
			bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: companyIDs}}}})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		companies := []schemas.Company{}
		if err := cursor.All(ctx, &companies); err != nil {
			return nil, err
		}
		for _, company := range companies {
			names[company.ID] = company.Name
		}
	}

	result := make([]schemas.ContactWithCompany, 0, len(contacts))
	for _, contact := range contacts {
		item := schemas.ContactWithCompany{Contact: contact}
		if name, ok := names[contact.CompanyID]; ok {
			item.CompanyName = &name
		}
		result = append(result, item)
	}

	return result, nil
}
