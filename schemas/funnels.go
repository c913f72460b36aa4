package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type FunnelStage struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`
	Order int    `json:"order" bson:"order"`
}

type Funnel struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	IsDefault   bool          `json:"is_default" bson:"is_default"`
	Stages      []FunnelStage `json:"stages,omitempty" bson:"stages,omitempty"`
	CreatedBy   bson.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
