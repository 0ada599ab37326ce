package api

// swagger:model api.CreateRoleRequest
type CreateRoleRequest struct {
	Name        string  `json:"name" validate:"required" example:"editor"`
	Description *string `json:"description" validate:"omitempty" example:"Can edit content"`
}
