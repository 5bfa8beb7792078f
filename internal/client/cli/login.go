package cli

import (
	"context"

	"github.com/avolosin/userdeck/internal/client/users"
)

// Login collects credentials and exchanges them for a session token.
//
// The "(required)" hints are advisory only; empty submissions go to the
// service, which rejects them itself. A success without a token counts as
// invalid credentials. Only a confirmed token persists the session and
// switches to the users screen.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email (required)", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.view.Notify(err.Error(), users.SeverityError)
		a.renderNotification()
		return nil
	}
	if token == "" {
		a.view.Notify("Invalid credentials!", users.SeverityError)
		a.renderNotification()
		return nil
	}

	if err := a.sessions.Save(token); err != nil {
		// The session just won't survive a restart.
		a.log.Warn(ctx, "session not persisted", "error", err)
	}
	a.token = token
	a.api.SetToken(token)

	a.view.LoadPage(ctx, 1)
	a.renderUsers()
	return nil
}

// Logout clears the session and returns to the login prompt. No network
// call is involved.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	a.token = ""
	a.api.SetToken("")
	a.view.Reset()

	printlnFn("Logged out.")
	return nil
}
