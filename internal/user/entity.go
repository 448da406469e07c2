// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "users"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email"         json:"email"`
	DisplayName string             `bson:"displayName"   json:"displayName"`
	Role        string             `bson:"role"          json:"role"`
	LastLogin   time.Time          `bson:"lastLogin"     json:"lastLogin"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleUser   = "user"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	}
	return false
}
