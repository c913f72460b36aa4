package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ACTIVITY_TYPE_CALL    = "call"
	ACTIVITY_TYPE_EMAIL   = "email"
	ACTIVITY_TYPE_MEETING = "meeting"
	ACTIVITY_TYPE_TASK    = "task"
	ACTIVITY_TYPE_NOTE    = "note"

	ACTIVITY_STATUS_PENDING   = "pending"
	ACTIVITY_STATUS_COMPLETED = "completed"
	ACTIVITY_STATUS_CANCELLED = "cancelled"
)

type Activity struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type          string        `json:"type,omitempty" bson:"type,omitempty"`
	Title         string        `json:"title,omitempty" bson:"title,omitempty"`
	Description   string        `json:"description,omitempty" bson:"description,omitempty"`
	Status        string        `json:"status,omitempty" bson:"status,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CompletedDate *time.Time    `json:"completed_date,omitempty" bson:"completed_date,omitempty"`
	ContactID     bson.ObjectID `json:"contact_id,omitempty" bson:"contact_id,omitempty"`
	CompanyID     bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	OpportunityID bson.ObjectID `json:"opportunity_id,omitempty" bson:"opportunity_id,omitempty"`
	AssignedTo    bson.ObjectID `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedBy     bson.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

type ActivityWithRelations struct {
	Activity    `bson:",inline"`
	ContactName *string `json:"contact_name" bson:"-"`
	CompanyName *string `json:"company_name" bson:"-"`
}
