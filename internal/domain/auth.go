package domain

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims is the payload encoded into access tokens.
type Claims struct {
	UserID  string `json:"user_id"`
	AdminID string `json:"admin_id"`
	Role    Role   `json:"role"`
	jwt.StandardClaims
}

// RefreshToken is a server-held token backing the session restore flow.
// The value travels only in an http-only cookie.
type RefreshToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Value     string             `bson:"value" json:"-"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Session is what a successful login or refresh hands back to the client.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
