package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Company struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string        `json:"name,omitempty" bson:"name,omitempty"`
	Industry  string        `json:"industry,omitempty" bson:"industry,omitempty"`
	Website   string        `json:"website,omitempty" bson:"website,omitempty"`
	Phone     string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string        `json:"email,omitempty" bson:"email,omitempty"`
	Address   string        `json:"address,omitempty" bson:"address,omitempty"`
	Size      string        `json:"size,omitempty" bson:"size,omitempty"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedBy bson.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
