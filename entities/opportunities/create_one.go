package opportunities

import (
	"api/database"
	"api/entities/funnels"
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

type createOpportunityPayload struct {
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Value             float64       `json:"value"`
	Stage             string        `json:"stage"`
	FunnelID          bson.ObjectID `json:"funnel_id"`
	Probability       float64       `json:"probability"`
	ExpectedCloseDate time.Time     `json:"expected_close_date"`
	ContactID         bson.ObjectID `json:"contact_id"`
	CompanyID         bson.ObjectID `json:"company_id"`
}

func CreateOne(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.GetAuthUser(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Usuário não autenticado", nil, 0)
		return
	}

	payload := &createOpportunityPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, OPPORTUNITIES_INVALID_REQUEST_DATA)
		return
	}

	if strings.TrimSpace(payload.Title) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O título da oportunidade é obrigatório", nil, 0)
		return
	}

	if payload.Probability < 0 || payload.Probability > 100 {
		utils.SendResponse(w, http.StatusBadRequest, "A probabilidade deve estar entre 0 e 100", nil, 0)
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

	stage := strings.TrimSpace(payload.Stage)
	funnelID := payload.FunnelID

	// Sem estágio explícito, o card entra no primeiro estágio do funil
	// padrão do usuário.
	if stage == "" {
		defaultFunnel, err := findDefaultFunnel(ctx, db, user.ID)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_DEFAULT_FUNNEL_IN_MONGODB)
			return
		}
		if defaultFunnel == nil || len(defaultFunnel.Stages) == 0 {
			utils.SendResponse(w, http.StatusBadRequest, "Estágio não informado e nenhum funil padrão encontrado", nil, 0)
			return
		}
		stage = defaultFunnel.Stages[0].ID
		if funnelID.IsZero() {
			funnelID = defaultFunnel.ID
		}
	}

	// Partição de ordenação: (funnel_id, stage); oportunidades legadas sem
	// funil usam (created_by, stage).
	partition := bson.D{{Key: "stage", Value: stage}}
	if !funnelID.IsZero() {
		partition = append(partition, bson.E{Key: "funnel_id", Value: funnelID})
	} else {
		partition = append(partition, bson.E{Key: "created_by", Value: user.ID})
	}

	cursor, err := collection.Find(ctx, partition)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}
	siblings := []schemas.Opportunity{}
	if err := cursor.All(ctx, &siblings); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_FIND_OPPORTUNITIES_IN_MONGODB)
		return
	}

	opportunity := &schemas.Opportunity{
		Title:             payload.Title,
		Description:       payload.Description,
		Value:             payload.Value,
		Stage:             stage,
		FunnelID:          funnelID,
		Probability:       payload.Probability,
		ExpectedCloseDate: payload.ExpectedCloseDate,
		ContactID:         payload.ContactID,
		CompanyID:         payload.CompanyID,
		AssignedTo:        user.ID,
		CreatedBy:         user.ID,
		Order:             nextOrder(siblings),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	result, err := collection.InsertOne(ctx, opportunity)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, CANNOT_INSERT_OPPORTUNITY_TO_MONGODB)
		return
	}

	opportunity.ID = result.InsertedID.(bson.ObjectID)

	funnels.BroadcastBoardUpdate("opportunity_created", opportunity, "Nova oportunidade criada")

	utils.SendResponse(w, http.StatusCreated, "", opportunity, 0)
}

// findDefaultFunnel retorna o funil padrão do usuário (flag is_default, senão
// o mais antigo) ou nil quando o usuário ainda não tem funis.
func findDefaultFunnel(ctx context.Context, db *mongo.Database, userID bson.ObjectID) (*schemas.Funnel, error) {
	collection := db.Collection(database.COLLECTION_FUNNELS)

	funnel := &schemas.Funnel{}
	err := collection.FindOne(ctx, bson.D{
		{Key: "created_by", Value: userID},
		{Key: "is_default", Value: true},
	}).Decode(funnel)
	if err == nil {
		return funnel, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	oldestOpts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	err = collection.FindOne(ctx, bson.D{{Key: "created_by", Value: userID}}, oldestOpts).Decode(funnel)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return funnel, nil
}
