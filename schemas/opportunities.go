package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Opportunity struct {
	ID                bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title             string        `json:"title,omitempty" bson:"title,omitempty"`
	Description       string        `json:"description,omitempty" bson:"description,omitempty"`
	Value             float64       `json:"value" bson:"value"`
	Stage             string        `json:"stage,omitempty" bson:"stage,omitempty"`
	FunnelID          bson.ObjectID `json:"funnel_id,omitempty" bson:"funnel_id,omitempty"`
	Probability       float64       `json:"probability" bson:"probability"`
	ExpectedCloseDate time.Time     `json:"expected_close_date" bson:"expected_close_date,omitempty"`
	ContactID         bson.ObjectID `json:"contact_id,omitempty" bson:"contact_id,omitempty"`
	CompanyID         bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	AssignedTo        bson.ObjectID `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedBy         bson.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	Order             int           `json:"order" bson:"order"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt         time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

// OpportunityWithRelations carrega os nomes de exibição resolvidos para o
// board. Referências pendentes (contato/empresa excluídos) ficam nulas.
type OpportunityWithRelations struct {
	Opportunity   `bson:",inline"`
	ContactName   *string `json:"contact_name" bson:"-"`
	CompanyName   *string `json:"company_name" bson:"-"`
	CreatedByName *string `json:"created_by_name" bson:"-"`
}
