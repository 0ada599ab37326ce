package api

// UpdateMeRequest 使用者更新自己的個人資料，不含角色與啟用狀態。
// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	FullName string  `json:"fullName" validate:"required" example:"Alice Chen"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone    *string `json:"phone" validate:"omitempty" example:"+886912345678"`
}
