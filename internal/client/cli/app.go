package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nmatveev/dockeep/internal/client/api"
	"github.com/nmatveev/dockeep/internal/client/config"
	"github.com/nmatveev/dockeep/internal/client/repositories/session"
	"github.com/nmatveev/dockeep/internal/client/services"
	"github.com/nmatveev/dockeep/internal/client/store"
	"github.com/nmatveev/dockeep/internal/common"
	"github.com/nmatveev/dockeep/internal/cryptox"
	"github.com/nmatveev/dockeep/internal/logging"
)

const (
	stateDBFile  = "dockeep.db"
	stateKeyFile = "dockeep.key"
)

type App struct {
	config *config.Config
	logger logging.Logger

	authService     services.AuthService
	documentService services.DocumentService
	archiveService  services.ArchiveService
	batchService    services.BatchService

	db          *sql.DB
	reader      *bufio.Reader
	currentPath string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := store.Open(ctx, filepath.Join(c.StateDir, stateDBFile))
	if err != nil {
		return nil, err
	}

	sealKey, err := cryptox.LoadOrCreateKeyFile(filepath.Join(c.StateDir, stateKeyFile))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	client := api.NewHTTPClient(c.ServerEndpoint, c.MleanEndpoint, c.RequestTimeout)

	as := services.NewAuthService(client, session.NewSQLiteRepository(db), sealKey, logger)

	// Any 401, from any endpoint, drops the console to logged-out state.
	client.OnUnauthorized(func() {
		as.ForceLogout()
		printlnFn("Session expired, please log in again.")
	})

	return &App{
		config:          c,
		logger:          logger,
		authService:     as,
		documentService: services.NewDocumentService(client, logger),
		archiveService:  services.NewArchiveService(client, logger),
		batchService:    services.NewBatchService(client, logger),
		db:              db,
		reader:          bufio.NewReader(os.Stdin),
		currentPath:     "/",
	}, nil
}

// Run restores a persisted session when one exists and starts the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	sess, err := a.authService.Restore(ctx)
	switch {
	case err == nil:
		printlnFn("Welcome back,", sess.User.Username)
	case errors.Is(err, common.ErrorNoSession):
		// Nothing saved; the user logs in manually.
	default:
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.Current() != nil
}
