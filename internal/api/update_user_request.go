package api

// UpdateUserRequest 描述更新使用者後應有的完整狀態。
// 本型別僅承載欄位，不做任何驗證；驗證由呼叫端的 handler 執行。
// RoleIDs 為有序序列，順序與重複皆原樣保留。
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	FullName string  `json:"fullName" validate:"required" example:"Alice Chen"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone    *string `json:"phone" validate:"omitempty" example:"+886912345678"`
	RoleIDs  []int   `json:"roleIds"`
	IsActive bool    `json:"isActive" example:"true"`
}

// NewUpdateUserRequest 回傳帶預設值的請求：isActive 預設 true，
// roleIds 為每個實例獨立持有的空序列。handler 先建立預設值再 Bind，
// JSON 內省略的欄位即保留預設。
func NewUpdateUserRequest() UpdateUserRequest {
	return UpdateUserRequest{
		RoleIDs:  []int{},
		IsActive: true,
	}
}
