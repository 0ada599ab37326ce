package api

import "time"

// swagger:model api.RoleResponse
type RoleResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"editor"`
	Description *string   `json:"description,omitempty" example:"Can edit content"`
	CreatedAt   time.Time `json:"createdAt"`
}
