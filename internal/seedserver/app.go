// Package seedserver serves a fixed list of default todos over HTTP, in the
// same shape as the public jsonplaceholder endpoint the client seeds from.
package seedserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/seedserver/config"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *TodoStore
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSON(os.Stdout, level)

	store, err := LoadTodoStore(c.TodosFile)
	if err != nil {
		return nil, fmt.Errorf("todo list init error: %w", err)
	}

	return &App{config: c, logger: logger.With("module", "seed_server"), store: store}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts listening on the configured address and blocks until ctx is
// cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	listen, err := net.Listen("tcp", app.config.EndpointAddr)
	if err != nil {
		return err
	}
	return app.serve(ctx, listen)
}

func (app *App) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{Handler: NewHandler(app.store, app.logger)}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping seed server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting seed server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
