package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/httpserver"
	"memo/internal/logs"
)

const shutdownTimeout = 5 * time.Second

// App owns the two long-lived pieces of the process, the HTTP listener and
// the interactive menu, and stops them together.
type App struct {
	server  *httpserver.Server
	program *tea.Program
	started bool
}

// New creates an App. A nil program runs the listener alone.
func New(server *httpserver.Server, program *tea.Program) *App {
	return &App{server: server, program: program}
}

// Start binds the HTTP listener.
func (a *App) Start() error {
	if err := a.server.Start(); err != nil {
		return err
	}
	a.started = true
	return nil
}

// Run starts the listener unless Start already did, blocks until the menu
// exits or ctx is cancelled, then shuts the listener down.
func (a *App) Run(ctx context.Context) error {
	if !a.started {
		if err := a.Start(); err != nil {
			return err
		}
	}

	runErr := a.wait(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (a *App) wait(ctx context.Context) error {
	if a.program == nil {
		<-ctx.Done()
		logs.Logger.Infow("shutdown requested", "reason", ctx.Err())
		return nil
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			logs.Logger.Infow("shutdown requested", "reason", ctx.Err())
			a.program.Quit()
		case <-done:
		}
	}()

	_, err := a.program.Run()
	return err
}

// Stop closes the HTTP listener.
func (a *App) Stop(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
