package opportunities

import (
	"api/database"
	"api/schemas"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// resolveRelations anexa os nomes de contato, empresa e criador. Referências
// para documentos já excluídos resolvem como nulas, já que a exclusão de
// contatos e empresas não faz cascata.
func resolveRelations(ctx context.Context, db *mongo.Database, list []schemas.Opportunity) ([]schemas.OpportunityWithRelations, error) {
	contactIDs := []bson.ObjectID{}
	companyIDs := []bson.ObjectID{}
	userIDs := []bson.ObjectID{}

	for _, opp := range list {
		if !opp.ContactID.IsZero() {
			contactIDs = append(contactIDs, opp.ContactID)
		}
		if !opp.CompanyID.IsZero() {
			companyIDs = append(companyIDs, opp.CompanyID)
		}
		if !opp.CreatedBy.IsZero() {
			userIDs = append(userIDs, opp.CreatedBy)
		}
	}

	contactNames, err := contactNamesByID(ctx, db, contactIDs)
	if err != nil {
		return nil, err
	}

	companyNames, err := companyNamesByID(ctx, db, companyIDs)
	if err != nil {
		return nil, err
	}

	userNames, err := userNamesByID(ctx, db, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]schemas.OpportunityWithRelations, 0, len(list))
	for _, opp := range list {
		item := schemas.OpportunityWithRelations{Opportunity: opp}

		if name, ok := contactNames[opp.ContactID]; ok {
			item.ContactName = &name
		}
		if name, ok := companyNames[opp.CompanyID]; ok {
			item.CompanyName = &name
		}
		if name, ok := userNames[opp.CreatedBy]; ok {
			item.CreatedByName = &name
		}

		result = append(result, item)
	}

	return result, nil
}

func contactNamesByID(ctx context.Context, db *mongo.Database, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	names := map[bson.ObjectID]string{}
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := db.Collection(database.COLLECTION_CONTACTS).Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []schemas.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}

	for _, contact := range contacts {
		names[contact.ID] = fmt.Sprintf("%s %s", contact.FirstName, contact.LastName)
	}
	return names, nil
}

func companyNamesByID(ctx context.Context, db *mongo.Database, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	names := map[bson.ObjectID]string{}
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := db.Collection(database.COLLECTION_COMPANIES).Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
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
	return names, nil
}

func userNamesByID(ctx context.Context, db *mongo.Database, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	names := map[bson.ObjectID]string{}
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := db.Collection(database.COLLECTION_USERS).Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []schemas.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	for _, user := range users {
		name := user.Name
		if name == "" {
			name = user.Email
		}
		names[user.ID] = name
	}
	return names, nil
}
