package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	AdminID     primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	MenuID      primitive.ObjectID `bson:"menu_id" json:"menu_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type Menu struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	AdminID   primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// PublicMenu is the customer-facing menu page payload: the menu, the cafe it
// belongs to, and only the products currently marked available.
type PublicMenu struct {
	Menu     Menu      `json:"menu"`
	Cafe     *Cafe     `json:"cafe,omitempty"`
	Products []Product `json:"products"`
}
