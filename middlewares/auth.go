package middlewares

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type contextKey string

const UserContextKey = contextKey("auth_user")

// AuthAPIUser é o retorno da API externa de identidade.
type AuthAPIUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Auth resolve o usuário autenticado pela API externa de identidade, valida o
// e-mail contra a lista de usuários da empresa e garante o documento do
// usuário no MongoDB antes de liberar a requisição.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Token não informado", nil, 0)
			return
		}

		authURL := os.Getenv(utils.AUTH_API_URL)
		if authURL == "" {
			authURL = "http://localhost:8000"
		}
		userURL := fmt.Sprintf("%s/api/user", authURL)

		req, err := http.NewRequest("GET", userURL, nil)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "Erro ao criar requisição de autenticação", nil, 0)
			return
		}
		req.Header.Set("Authorization", token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			utils.SendResponse(w, http.StatusBadGateway, "Erro ao conectar na API de autenticação", nil, 0)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			utils.SendResponse(w, http.StatusUnauthorized, "Token inválido ou usuário não autenticado", nil, 0)
			return
		}

		authUser := AuthAPIUser{}
		err = json.NewDecoder(resp.Body).Decode(&authUser)
		if err != nil || authUser.Email == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Usuário inválido retornado pela autenticação", nil, 0)
			return
		}

		if !utils.IsValidUserEmail(authUser.Email) {
			log.Warn().Str("email", authUser.Email).Msg("acesso negado para usuário fora da lista de permitidos")
			utils.SendResponse(w, http.StatusForbidden, "Usuário não autorizado", nil, 0)
			return
		}

		user, err := upsertUser(authUser)
		if err != nil {
			log.Error().Err(err).Str("email", authUser.Email).Msg("erro ao registrar usuário autenticado")
			utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_UPSERT_USER_IN_MONGODB)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// upsertUser garante o documento do usuário na primeira vez em que ele é
// observado e mantém o nome sincronizado com a API de identidade.
func upsertUser(authUser AuthAPIUser) (schemas.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	user := schemas.User{}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return user, err
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_USERS)

	email := strings.ToLower(authUser.Email)
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: authUser.Name},
			{Key: "email", Value: email},
			{Key: "updated_at", Value: time.Now()},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: time.Now()},
		}},
	}

	findOpts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err = collection.FindOneAndUpdate(ctx, filter, update, findOpts).Decode(&user)
	return user, err
}

// GetAuthUser lê o usuário autenticado injetado pelo middleware Auth.
func GetAuthUser(r *http.Request) (schemas.User, bool) {
	user, ok := r.Context().Value(UserContextKey).(schemas.User)
	return user, ok
}
