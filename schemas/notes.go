package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Note struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content       string        `json:"content,omitempty" bson:"content,omitempty"`
	ContactID     bson.ObjectID `json:"contact_id,omitempty" bson:"contact_id,omitempty"`
	CompanyID     bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	OpportunityID bson.ObjectID `json:"opportunity_id,omitempty" bson:"opportunity_id,omitempty"`
	CreatedBy     bson.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
