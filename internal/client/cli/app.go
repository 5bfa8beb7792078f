// Package cli is the interactive surface of userdeck: a REPL whose command
// set is gated on the session state. The unauthenticated "route" offers only
// login; once a token is held the users screen commands open up.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/avolosin/userdeck/internal/client/api"
	"github.com/avolosin/userdeck/internal/client/config"
	"github.com/avolosin/userdeck/internal/client/session"
	"github.com/avolosin/userdeck/internal/client/users"
	"github.com/avolosin/userdeck/internal/logging"
)

// apiClient is the slice of the API client the app itself needs; the users
// view holds its own, wider view of the same client.
type apiClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	SetToken(token string)
}

// sessionStore persists the token between runs.
type sessionStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// App wires the REPL to the API client, the session store, and the users
// view. The token field doubles as the auth-gate predicate.
type App struct {
	config   *config.Config
	api      apiClient
	sessions sessionStore
	view     *users.View
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	token    string
}

// NewApp builds the application from its configuration.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.BaseURL, cfg.RequestTimeout, log)
	view := users.NewView(client, log, cfg.DebounceInterval, cfg.NotificationTTL)

	return &App{
		config:   cfg,
		api:      client,
		sessions: store,
		view:     view,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// Run restores the session (read once, at start) and enters the REPL.
func (a *App) Run(ctx context.Context) {
	token, err := a.sessions.Load()
	if err != nil {
		a.log.Warn(ctx, "session not restored", "error", err)
	}

	if token != "" {
		a.token = token
		a.api.SetToken(token)
		a.view.LoadPage(ctx, 1)
		a.renderUsers()
	} else {
		fmt.Fprintln(a.out, "Welcome to userdeck. Type 'login' to continue, 'help' for commands.")
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// status feeds the prompt: the current "route" plus paging position.
func (a *App) status() string {
	if !a.isLoggedIn() {
		return "login"
	}
	return fmt.Sprintf("users %d/%d", a.view.Page(), a.view.TotalPages())
}
