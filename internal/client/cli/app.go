package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/seed"
	"github.com/dmitrijs2005/gophtodo/internal/client/services"
	"github.com/dmitrijs2005/gophtodo/internal/client/storage"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config   *config.Config
	accounts services.AccountService
	tasks    services.TaskService
	backend  *storage.Backend
	logger   logging.Logger
	user     *models.User
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the configured backend and builds the services on top of it.
// Each App gets its own session id, attached to every log record.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewText(os.Stderr, level).With("session", uuid.NewString())

	backend, err := storage.Open(ctx, c)
	if err != nil {
		logger.Error(ctx, "error opening storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}
	logger.Debug(ctx, "storage opened", "backend", c.StorageBackend)

	source := seed.NewHTTPSource(c.SeedURL, c.SeedTimeout)

	return &App{
		config:   c,
		accounts: services.NewAccountService(backend.Repo, logger),
		tasks:    services.NewTaskService(backend.Repo, source, c.SeedLimit, logger),
		backend:  backend,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run blocks in the REPL and releases the backend afterwards.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.backend.Close(); err != nil {
			a.logger.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to gophtodo (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}
