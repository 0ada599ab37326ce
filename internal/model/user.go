package model

import "time"

// User 代表 users 資料表的一筆紀錄。
// Email 與 Phone 可為 NULL，與空字串是不同的狀態。
// RoleIDs 來自 user_roles 關聯表，依 position 排序。
type User struct {
	ID           int       `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"full_name"`
	Email        *string   `db:"email" json:"email,omitempty"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	RoleIDs      []int     `db:"-" json:"role_ids"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
