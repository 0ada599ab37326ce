package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	FullName  string    `json:"fullName" example:"Alice Chen"`
	Email     *string   `json:"email,omitempty" example:"alice@example.com"`
	Phone     *string   `json:"phone,omitempty" example:"+886912345678"`
	RoleIDs   []int     `json:"roleIds"`
	IsActive  bool      `json:"isActive" example:"true"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z07:00"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z07:00"`
}
