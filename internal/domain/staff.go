package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleWaiter  Role = "waiter"
	RoleKitchen Role = "kitchen"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleWaiter, RoleKitchen, RoleAdmin:
		return true
	}
	return false
}

// User covers both admins and their staff. For admins AdminID equals ID, so
// every record answers "which tenant's data may this user touch" the same way.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	AdminID   primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
