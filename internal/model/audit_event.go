package model

import "time"

// AuditEvent 紀錄一次帳號異動操作，由背景 worker 寫入。
type AuditEvent struct {
	ID        string    `db:"id" json:"id"`
	ActorID   int       `db:"actor_id" json:"actor_id"`
	Action    string    `db:"action" json:"action"`
	SubjectID int       `db:"subject_id" json:"subject_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
