package api

// swagger:model api.UpdateMyPasswordRequest
type UpdateMyPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required" example:"Secret123!"`
	NewPassword string `json:"newPassword" validate:"required" example:"Secret456!"`
}
