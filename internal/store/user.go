package store

import (
	"context"
	"fmt"

	"user-admin/internal/database"
	"user-admin/internal/model"
)

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.IsActive,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, full_name, email, phone, password_hash, is_active, is_admin, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	roleIDs, err := GetUserRoleIDs(ctx, db, u.ID)
	if err != nil {
		return nil, err
	}
	u.RoleIDs = roleIDs
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, full_name, email, phone, password_hash, is_active, is_admin, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	roleIDs, err := GetUserRoleIDs(ctx, db, u.ID)
	if err != nil {
		return nil, err
	}
	u.RoleIDs = roleIDs
	return u, nil
}

// GetUserRoleIDs 依 position 順序回傳使用者的角色 ID 序列。
func GetUserRoleIDs(ctx context.Context, db database.DB, userID int) ([]int, error) {
	rows, err := db.Query(ctx,
		`SELECT role_id FROM user_roles WHERE user_id = $1 ORDER BY position`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetUserRoleIDs: %w", err)
	}
	defer rows.Close()

	roleIDs := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("GetUserRoleIDs: %w", err)
		}
		roleIDs = append(roleIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetUserRoleIDs: %w", err)
	}
	return roleIDs, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, full_name, email, phone, password_hash, is_active, is_admin, created_at, updated_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		u.RoleIDs = []int{}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}

	if len(users) == 0 {
		return users, nil
	}

	roleRows, err := db.Query(ctx,
		`SELECT user_id, role_id FROM user_roles ORDER BY user_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer roleRows.Close()

	byID := map[int]int{}
	for i := range users {
		byID[users[i].ID] = i
	}
	for roleRows.Next() {
		var userID, roleID int
		if err := roleRows.Scan(&userID, &roleID); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		if i, ok := byID[userID]; ok {
			users[i].RoleIDs = append(users[i].RoleIDs, roleID)
		}
	}
	if err := roleRows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, phone, password_hash, is_active, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		u.FullName,
		u.Email,
		u.Phone,
		u.PasswordHash,
		u.IsActive,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	if err := ReplaceUserRoles(ctx, db, u.ID, u.RoleIDs); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser 以請求內容整份覆蓋可變欄位，角色序列一併替換。
func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET full_name = $1, email = $2, phone = $3, is_active = $4, updated_at = now()
		 WHERE id = $5`,
		u.FullName,
		u.Email,
		u.Phone,
		u.IsActive,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	return ReplaceUserRoles(ctx, db, u.ID, u.RoleIDs)
}

// ReplaceUserRoles 清除舊的角色關聯後依序重建，position 保留序列順序。
func ReplaceUserRoles(ctx context.Context, db database.DB, userID int, roleIDs []int) error {
	if _, err := db.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1`,
		userID,
	); err != nil {
		return fmt.Errorf("ReplaceUserRoles: %w", err)
	}
	for i, roleID := range roleIDs {
		if _, err := db.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id, position) VALUES ($1, $2, $3)`,
			userID,
			roleID,
			i,
		); err != nil {
			return fmt.Errorf("ReplaceUserRoles: %w", err)
		}
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, db database.DB, ID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
