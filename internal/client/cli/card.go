package cli

import (
	"fmt"
	"strings"

	"github.com/avolosin/userdeck/internal/client/models"
)

// RenderUserCard formats one record for the users screen. Pure rendering,
// no state.
func RenderUserCard(u models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d %s\n", u.ID, u.FullName())
	fmt.Fprintf(&b, "      %s\n", u.Email)
	fmt.Fprintf(&b, "      %s", u.Avatar)
	return b.String()
}

// renderUsers prints the whole users screen: load errors, the filtered
// cards, the paging footer, and any pending notification.
func (a *App) renderUsers() {
	if a.view.Loading() {
		fmt.Fprintln(a.out, "Loading...")
	}
	if msg := a.view.FetchError(); msg != "" {
		fmt.Fprintln(a.out, "Error:", msg)
	}

	visible := a.view.Visible()
	if len(visible) == 0 && a.view.FetchError() == "" {
		fmt.Fprintln(a.out, "No users found.")
	}
	for _, u := range visible {
		fmt.Fprintln(a.out, RenderUserCard(u))
	}

	fmt.Fprintf(a.out, "Page %d of %d\n", a.view.Page(), a.view.TotalPages())
	a.renderNotification()
}

// renderNotification prints the active notification, if one is showing.
func (a *App) renderNotification() {
	if n := a.view.Notification(); n != nil {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Severity, n.Message)
	}
}
