package api

// swagger:model api.ResetUserPasswordResponse
type ResetUserPasswordResponse struct {
	NewPassword string `json:"new_password" example:"Abc123!@#Xyz"`
}
