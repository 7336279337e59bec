package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophquiz/internal/common"
	"github.com/dmitrijs2005/gophquiz/internal/filex"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/models"
)

type FileRepository struct {
	path      string
	backupDir string
	retention int
	now       func() time.Time
	log       logging.Logger
}

type Option func(*FileRepository)

// WithBackupDir puts snapshots in dir instead of next to the record file.
func WithBackupDir(dir string) Option {
	return func(r *FileRepository) {
		if dir != "" {
			r.backupDir = dir
		}
	}
}

// WithRetention keeps only the newest n snapshots. n <= 0 keeps all.
func WithRetention(n int) Option {
	return func(r *FileRepository) { r.retention = n }
}

func WithClock(now func() time.Time) Option {
	return func(r *FileRepository) { r.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(r *FileRepository) { r.log = l }
}

func NewFileRepository(path string, opts ...Option) *FileRepository {
	r := &FileRepository{
		path:      path,
		backupDir: filepath.Dir(path),
		now:       time.Now,
		log:       logging.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *FileRepository) Load(ctx context.Context) (models.Users, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Users{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Users{}, nil
	}

	var users models.Users
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptData, r.path, err)
	}
	if users == nil {
		users = models.Users{}
	}
	for email, u := range users {
		if u == nil {
			return nil, fmt.Errorf("%w: %s: null record for %q", common.ErrCorruptData, r.path, email)
		}
	}
	return users, nil
}

// Save overwrites the record file, then snapshots it. A failed snapshot is
// logged and does not fail the save: the primary write already succeeded.
func (r *FileRepository) Save(ctx context.Context, users models.Users) error {
	if users == nil {
		users = models.Users{}
	}
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	data = append(data, '\n')

	if err := filex.WriteFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write users: %w", err)
	}

	backup := r.BackupPath(r.now())
	if err := filex.CopyFile(backup, r.path); err != nil {
		r.log.Warn(ctx, "backup failed", "path", backup, "error", err)
		return nil
	}
	r.log.Debug(ctx, "backup written", "path", backup)

	if r.retention > 0 {
		r.prune(ctx)
	}
	return nil
}

func (r *FileRepository) baseAndExt() (string, string) {
	name := filepath.Base(r.path)
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// BackupPath is the snapshot name for a save at t.
func (r *FileRepository) BackupPath(t time.Time) string {
	base, ext := r.baseAndExt()
	return filepath.Join(r.backupDir, base+"_"+t.Format(common.BackupStampLayout)+ext)
}

// Backups lists existing snapshots, oldest first.
func (r *FileRepository) Backups() ([]string, error) {
	base, ext := r.baseAndExt()
	pattern := filepath.Join(r.backupDir, base+"_[0-9][0-9][0-9][0-9][0-9][0-9][0-9][0-9]_[0-9][0-9][0-9][0-9][0-9][0-9]"+ext)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func (r *FileRepository) prune(ctx context.Context) {
	backups, err := r.Backups()
	if err != nil {
		r.log.Warn(ctx, "listing backups failed", "error", err)
		return
	}
	if len(backups) <= r.retention {
		return
	}
	for _, old := range backups[:len(backups)-r.retention] {
		if err := os.Remove(old); err != nil {
			r.log.Warn(ctx, "removing old backup failed", "path", old, "error", err)
			continue
		}
		r.log.Debug(ctx, "old backup removed", "path", old)
	}
}
