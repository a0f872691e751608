package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile is the aggregate root for the user domain.
// Email is the external identity and never changes after registration;
// authentication is delegated to Firebase, so no credentials are stored here.
type UserProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	District   string             `bson:"district" json:"district"`
	Upzila     string             `bson:"upzila" json:"upzila"`
	BloodGroup string             `bson:"bloodGroup" json:"bloodGroup"`
	PhotoURL   string             `bson:"photoURL" json:"photoURL"`
	Role       Role               `bson:"role" json:"role"`
	Status     UserStatus         `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProfileUpdate carries the only profile fields a caller may rewrite.
// Anything else present in a request body is ignored.
type ProfileUpdate struct {
	Name       string `json:"name"`
	District   string `json:"district"`
	Upzila     string `json:"upzila"`
	BloodGroup string `json:"bloodGroup"`
	PhotoURL   string `json:"photoURL"`
}
