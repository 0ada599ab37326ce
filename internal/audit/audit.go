package audit

import (
	"context"
	"log"
	"time"

	"user-admin/internal/database"
	"user-admin/internal/model"
	"user-admin/internal/store"
	"user-admin/internal/worker"

	"github.com/google/uuid"
)

// 異動操作的 action 常數
const (
	ActionCreateUser    = "user.create"
	ActionUpdateUser    = "user.update"
	ActionDeleteUser    = "user.delete"
	ActionResetPassword = "user.reset_password"
	ActionCreateRole    = "role.create"
)

const insertTimeout = 5 * time.Second

// 測試注入點
var (
	insertAuditEvent = store.InsertAuditEvent
	newEventID       = uuid.NewString
	logPrintf        = log.Printf
)

// Recorder 將異動事件交給 worker pool 非同步寫入 audit_events。
// 寫入失敗只記 log，不影響請求結果。
type Recorder struct {
	db   database.DB
	pool worker.Pool
}

func NewRecorder(db database.DB, pool worker.Pool) *Recorder {
	return &Recorder{db: db, pool: pool}
}

// Record 排程一筆審計事件。actorID 為操作者，subjectID 為被操作的使用者或角色。
func (r *Recorder) Record(actorID int, action string, subjectID int) {
	if r == nil {
		return
	}
	e := &model.AuditEvent{
		ID:        newEventID(),
		ActorID:   actorID,
		Action:    action,
		SubjectID: subjectID,
	}
	r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		defer cancel()
		if err := insertAuditEvent(ctx, r.db, e); err != nil {
			logPrintf("audit: %v", err)
		}
	})
}
