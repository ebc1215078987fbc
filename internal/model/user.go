package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a caller's authorization level.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether r may manage scholarships.
func (r Role) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin
}

// User is a signed-in account keyed by email.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Email       string             `bson:"email" json:"email"`
	Role        Role               `bson:"role" json:"role"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// EffectiveRole returns the stored role, or RoleUser when it is unrecognized.
func (u *User) EffectiveRole() Role {
	if u == nil || !u.Role.Valid() {
		return RoleUser
	}
	return u.Role
}

// UpdateResult mirrors the store's report for a single-document update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
