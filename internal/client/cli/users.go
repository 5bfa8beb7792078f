package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// List renders the users screen from current state, without re-fetching.
func (a *App) List(ctx context.Context) error {
	a.renderUsers()
	return nil
}

// Refresh re-fetches the current page and renders it.
func (a *App) Refresh(ctx context.Context) error {
	a.view.Refresh(ctx)
	a.renderUsers()
	return nil
}

// Page switches to the requested page. Every page change is a fresh fetch.
func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: page <number>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: page <number>")
		return nil
	}

	a.view.LoadPage(ctx, n)
	a.renderUsers()
	return nil
}

// Search sets the filter term ("search" alone clears it), waits out the
// debounce quiet interval, and renders the filtered list.
func (a *App) Search(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")
	a.view.SetSearch(term)

	// Give the debounced copy time to catch up before rendering.
	deadline := time.Now().Add(a.config.DebounceInterval + 100*time.Millisecond)
	for a.view.DebouncedSearch() != term && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	a.renderUsers()
	return nil
}

// Edit opens a draft for the record, collects the three editable fields,
// and confirms or cancels. The draft only reaches the list after the server
// accepts the update.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: edit <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: edit <id>")
		return nil
	}

	if !a.view.BeginEdit(id) {
		a.renderNotification()
		return nil
	}
	d := a.view.Draft()

	firstName, err := GetSimpleText(a.reader, fmt.Sprintf("First name (current: %s)", d.FirstName), a.out)
	if err != nil {
		a.view.CancelEdit()
		return err
	}
	lastName, err := GetSimpleText(a.reader, fmt.Sprintf("Last name (current: %s)", d.LastName), a.out)
	if err != nil {
		a.view.CancelEdit()
		return err
	}
	email, err := GetSimpleText(a.reader, fmt.Sprintf("Email (current: %s)", d.Email), a.out)
	if err != nil {
		a.view.CancelEdit()
		return err
	}
	a.view.SetDraft(firstName, lastName, email)

	answer, err := GetSimpleText(a.reader, "Save changes? (y/n)", a.out)
	if err != nil {
		a.view.CancelEdit()
		return err
	}
	if !strings.EqualFold(answer, "y") {
		a.view.CancelEdit()
		printlnFn("Edit cancelled.")
		return nil
	}

	a.view.ConfirmEdit(ctx)
	if a.view.Draft() != nil {
		// Validation or the update failed; nothing was merged.
		a.renderNotification()
		a.view.CancelEdit()
		return nil
	}
	a.renderUsers()
	return nil
}

// Delete removes the record immediately. There is no confirmation step.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: delete <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: delete <id>")
		return nil
	}

	a.view.Delete(ctx, id)
	a.renderUsers()
	return nil
}
