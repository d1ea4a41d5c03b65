package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportStatusQueued     ImportTaskStatus = "queued"
	ImportStatusProcessing ImportTaskStatus = "processing"
	ImportStatusCompleted  ImportTaskStatus = "completed"
	ImportStatusFailed     ImportTaskStatus = "failed"
)

// ImportTask tracks an async menu import from an uploaded spreadsheet.
type ImportTask struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status       ImportTaskStatus   `bson:"status" json:"status"`
	AdminID      primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	MenuID       primitive.ObjectID `bson:"menu_id" json:"menu_id"`
	FileName     string             `bson:"file_name" json:"file_name"`
	File         []byte             `bson:"file" json:"-"`
	ProductCount int                `bson:"product_count" json:"product_count"`
	ErrorMessage string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount   int                `bson:"retry_count" json:"retry_count"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
