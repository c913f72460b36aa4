package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CONTACT_STATUS_ACTIVE   = "active"
	CONTACT_STATUS_INACTIVE = "inactive"
	CONTACT_STATUS_PROSPECT = "prospect"
)

type Contact struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string        `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName  string        `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Email     string        `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Position  string        `json:"position,omitempty" bson:"position,omitempty"`
	CompanyID bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	Status    string        `json:"status,omitempty" bson:"status,omitempty"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedBy bson.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

type ContactWithCompany struct {
	Contact     `bson:",inline"`
	CompanyName *string `json:"company_name" bson:"-"`
}
