package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	FullName string  `json:"fullName" validate:"required" example:"Alice Chen"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone    *string `json:"phone" validate:"omitempty" example:"+886912345678"`
	Password string  `json:"password" validate:"required" example:"Secret123!"`
	RoleIDs  []int   `json:"roleIds"`
	IsActive bool    `json:"isActive" example:"true"`
	IsAdmin  bool    `json:"isAdmin" example:"false"`
}

// NewCreateUserRequest 回傳帶預設值的請求，預設與 UpdateUserRequest 一致。
func NewCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		RoleIDs:  []int{},
		IsActive: true,
	}
}
