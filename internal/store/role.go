package store

import (
	"context"
	"fmt"

	"user-admin/internal/database"
	"user-admin/internal/model"
)

func ListRoles(ctx context.Context, db database.DB) ([]model.Role, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, created_at FROM roles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRoles: %w", err)
	}
	defer rows.Close()

	roles := []model.Role{}
	for rows.Next() {
		r := model.Role{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListRoles: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRoles: %w", err)
	}
	return roles, nil
}

func CreateRole(ctx context.Context, db database.DB, r *model.Role) (*model.Role, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO roles (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		r.Name,
		r.Description,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateRole: %w", err)
	}
	return r, nil
}

// CountRolesByIDs 回傳 roleIDs 中實際存在的「相異」角色數量，
// 呼叫端以去重後的數量比對即可找出未知的角色 ID。
func CountRolesByIDs(ctx context.Context, db database.DB, roleIDs []int) (int, error) {
	if len(roleIDs) == 0 {
		return 0, nil
	}
	row := db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT id) FROM roles WHERE id = ANY($1)`,
		roleIDs,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("CountRolesByIDs: %w", err)
	}
	return count, nil
}
