package database

import (
	"api/utils"
	"context"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes cria os índices na inicialização. O índice parcial único em
// funnels garante no máximo um funil padrão por usuário mesmo com requisições
// concorrentes (duas abas disputando a criação do funil padrão).
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(GetDB())

	_, err = db.Collection(COLLECTION_FUNNELS).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_by", Value: 1}},
			Options: options.Index().
				SetName("one_default_funnel_per_user").
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "is_default", Value: true}}),
		},
		{
			Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(COLLECTION_OPPORTUNITIES).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "funnel_id", Value: 1}, {Key: "stage", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(COLLECTION_USERS).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}
