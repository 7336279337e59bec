package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophquiz/internal/audit"
	"github.com/dmitrijs2005/gophquiz/internal/config"
	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
	"github.com/dmitrijs2005/gophquiz/internal/models"
	"github.com/dmitrijs2005/gophquiz/internal/repositories/users"
	"github.com/dmitrijs2005/gophquiz/internal/services"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	authService  services.AuthService
	registration services.RegistrationService
	quizService  services.QuizService
	statsService services.StatsService
	directory    services.DirectoryService
	identity     *services.Identity
	session      logging.Logger
	in           io.Reader
	reader       *bufio.Reader
	out          io.Writer
}

// NewApp builds the file-backed store and audit trail described by c and the
// services on top of them.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	alg, err := cryptox.ParseAlgorithm(c.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	repo := users.NewFileRepository(c.DataFile,
		users.WithBackupDir(c.BackupDir),
		users.WithRetention(c.BackupRetention),
		users.WithLogger(log),
	)
	rec := audit.NewFileRecorder(c.AttemptsLogFile, c.AccessLogFile, log)

	a := newApp(repo, rec, alg, log, os.Stdin, os.Stdout)
	a.config = c
	return a, nil
}

func newApp(repo users.Repository, rec audit.Recorder, alg cryptox.Algorithm, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		log:          log,
		authService:  services.NewAuthService(repo, rec, alg, log),
		registration: services.NewRegistrationService(repo, alg, log),
		quizService:  services.NewQuizService(repo, log),
		statsService: services.NewStatsService(repo),
		directory:    services.NewDirectoryService(repo, rec),
		session:      log,
		in:           in,
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Run shows the menus until the user exits, stdin is closed or ctx is done.
// Cancelling ctx abandons the current prompt; an unfinished registration or
// quiz is not saved.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "starting", "data_file", a.dataFile())
	a.reader = bufio.NewReader(newCtxReader(ctx, a.in))
	runREPL(ctx, a, a.reader, a.out)
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.out)
		a.session.Info(ctx, "interrupted", "error", err)
		return
	}
	a.log.Debug(ctx, "stopped")
}

func (a *App) dataFile() string {
	if a.config == nil {
		return ""
	}
	return a.config.DataFile
}

func (a *App) currentRole() (models.Role, bool) {
	if a.identity == nil {
		return "", false
	}
	return a.identity.Role, true
}

func (a *App) startSession(id *services.Identity) {
	a.identity = id
	a.session = a.log.With("session", uuid.NewString(), "email", id.Email)
}

func (a *App) endSession() {
	a.identity = nil
	a.session = a.log
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
