// Package audit writes the security trail: one line per login attempt and
// one line per admin listing of all users. The files are append-only and are
// never read back by the application.
//
// Writing is best effort. A failed append is reported through the diagnostic
// logger and otherwise ignored, so an unwritable log never blocks the login
// or listing it describes.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/filex"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
)

// Recorder is what the services depend on.
type Recorder interface {
	RecordLoginAttempt(ctx context.Context, email string, success bool)
	RecordAdminAccess(ctx context.Context, adminEmail string)
}

type FileRecorder struct {
	attemptsPath string
	accessPath   string
	now          func() time.Time
	log          logging.Logger
}

func NewFileRecorder(attemptsPath, accessPath string, log logging.Logger) *FileRecorder {
	if log == nil {
		log = logging.Nop()
	}
	return &FileRecorder{attemptsPath: attemptsPath, accessPath: accessPath, now: time.Now, log: log}
}

// LoginAttemptLine formats one attempts-log line.
func LoginAttemptLine(ts time.Time, email string, success bool) string {
	status := "FALHA"
	if success {
		status = "SUCESSO"
	}
	return fmt.Sprintf("[%s] Tentativa de login - Email: %s - Resultado: %s", ts.Format(common.TimestampLayout), email, status)
}

// AdminAccessLine formats one access-log line.
func AdminAccessLine(ts time.Time, adminEmail string) string {
	return fmt.Sprintf("[%s] Acesso à lista de usuários por: %s", ts.Format(common.TimestampLayout), adminEmail)
}

func (r *FileRecorder) RecordLoginAttempt(ctx context.Context, email string, success bool) {
	r.append(ctx, r.attemptsPath, LoginAttemptLine(r.now(), email, success))
}

func (r *FileRecorder) RecordAdminAccess(ctx context.Context, adminEmail string) {
	r.append(ctx, r.accessPath, AdminAccessLine(r.now(), adminEmail))
}

func (r *FileRecorder) append(ctx context.Context, path, line string) {
	if path == "" {
		return
	}
	if err := filex.AppendLine(path, line); err != nil {
		r.log.Warn(ctx, "audit write failed", "path", path, "error", err)
	}
}

// Nop discards every record.
type Nop struct{}

func (Nop) RecordLoginAttempt(context.Context, string, bool) {}
func (Nop) RecordAdminAccess(context.Context, string)        {}
