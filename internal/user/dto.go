// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpsertUserRequest struct {
	Email       string     `json:"email"       validate:"required,email,max=255"`
	DisplayName string     `json:"displayName" validate:"max=100"`
	LastLogin   *time.Time `json:"lastLogin"`
	Role        string     `json:"role"        validate:"omitempty,oneof=user member admin"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user member admin"`
}

type UpsertResult struct {
	UserID  string
	Created bool
}

type UpsertResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
