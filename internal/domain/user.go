package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles
const (
	RoleDefault = "default"
	RoleAdmin   = "admin"
)

// User model. Created on first registration; the role is mutated only by the
// admin promotion endpoint.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
