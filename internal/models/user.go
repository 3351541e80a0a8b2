package models

import (
	"time"
)

// User is a registered journal owner. PasswordHash never leaves the service.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Firstname    string    `json:"firstname,omitempty" bson:"firstname,omitempty"`
	Lastname     string    `json:"lastname,omitempty" bson:"lastname,omitempty"`
	Balance      float64   `json:"balance" bson:"balance"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
