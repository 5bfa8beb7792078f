// Package users holds the state of the users screen: the fetched page, the
// search/debounce pair, the edit draft, and the transient notification. All
// CRUD calls are orchestrated here; rendering lives in the cli package.
package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/thoas/go-funk"

	"github.com/avolosin/userdeck/internal/client/models"
	"github.com/avolosin/userdeck/internal/logging"
	"github.com/avolosin/userdeck/internal/timex"
)

// Notification texts mirror the messages users already know.
const (
	msgFieldsRequired = "All fields are required!"
	msgUpdateOK       = "User updated successfully!"
	msgUpdateFailed   = "Something went wrong. Try again!"
	msgDeleteOK       = "User deleted successfully!"
	msgDeleteFailed   = "Failed to delete user."
	msgUserNotOnPage  = "User is not on the current page."
)

// API is the client surface the view needs.
type API interface {
	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Draft is a transient copy of one record's editable fields while an edit is
// open. It is discarded on cancel and only merged back into the list after a
// confirmed server update.
type Draft struct {
	UserID    int
	FirstName string
	LastName  string
	Email     string
}

// View owns the screen state. Safe for concurrent use: the REPL goroutine,
// the debounce timer, and in-flight fetches all go through one mutex.
type View struct {
	mu  sync.Mutex
	api API
	log logging.Logger

	users      []models.User
	page       int
	totalPages int
	loading    bool
	fetchErr   string

	search          string
	debouncedSearch string
	debouncer       *timex.Debouncer

	draft *Draft

	note    *Notification
	noteTTL time.Duration
	now     func() time.Time

	// fetchSeq tags each issued list request; a response whose tag is no
	// longer the latest is stale and discarded.
	fetchSeq uint64
}

// NewView builds a View. debounce is the search quiet interval, noteTTL the
// notification auto-dismiss duration.
func NewView(api API, log logging.Logger, debounce, noteTTL time.Duration) *View {
	return &View{
		api:        api,
		log:        log.With("component", "users"),
		page:       1,
		totalPages: 1,
		debouncer:  timex.NewDebouncer(debounce),
		noteTTL:    noteTTL,
		now:        time.Now,
	}
}

// LoadPage fetches the given page and replaces the raw list on success.
// Out-of-range requests are clamped to [1, totalPages] as currently known.
// Concurrent calls are resolved in favor of the most recently issued one.
func (v *View) LoadPage(ctx context.Context, page int) {
	v.mu.Lock()
	if page < 1 {
		page = 1
	}
	if page > v.totalPages {
		page = v.totalPages
	}
	v.page = page
	v.loading = true
	v.fetchErr = ""
	v.fetchSeq++
	seq := v.fetchSeq
	v.mu.Unlock()

	result, err := v.api.ListUsers(ctx, page)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.fetchSeq {
		v.log.Debug(ctx, "discarding stale page response", "page", page)
		return
	}
	v.loading = false
	if err != nil {
		v.fetchErr = err.Error()
		return
	}
	v.users = result.Data
	if result.TotalPages > 0 {
		v.totalPages = result.TotalPages
	}
}

// Refresh re-fetches the current page.
func (v *View) Refresh(ctx context.Context) {
	v.mu.Lock()
	page := v.page
	v.mu.Unlock()
	v.LoadPage(ctx, page)
}

// Page reports the current 1-based page number.
func (v *View) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// TotalPages reports the server-stated page count from the last fetch.
func (v *View) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalPages
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// FetchError returns the error text of the last failed fetch, or "".
func (v *View) FetchError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetchErr
}

// SetSearch updates the live term immediately and schedules the debounced
// term to catch up after the quiet interval. Each keystroke cancels the
// previously pending update.
func (v *View) SetSearch(term string) {
	v.mu.Lock()
	v.search = term
	v.mu.Unlock()

	v.debouncer.Schedule(func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.debouncedSearch = v.search
	})
}

// Search returns the live search term.
func (v *View) Search() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.search
}

// DebouncedSearch returns the term filtering is actually based on.
func (v *View) DebouncedSearch() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.debouncedSearch
}

// Visible derives the filtered list: records whose "first last email"
// concatenation contains the debounced term, case-insensitively. An empty
// term passes the raw list through. Only the current page is searched.
func (v *View) Visible() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()

	term := strings.ToLower(v.debouncedSearch)
	out := funk.Filter(v.users, func(u models.User) bool {
		if term == "" {
			return true
		}
		haystack := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Email)
		return strings.Contains(haystack, term)
	}).([]models.User)
	return out
}

// BeginEdit opens a draft seeded from the record with the given id. Returns
// false (with a warning notification) when the id is not on the current page.
func (v *View) BeginEdit(id int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	found := funk.Find(v.users, func(u models.User) bool { return u.ID == id })
	if found == nil {
		v.setNote(msgUserNotOnPage, SeverityWarning)
		return false
	}
	u := found.(models.User)
	v.draft = &Draft{UserID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
	return true
}

// Draft returns a copy of the open draft, or nil.
func (v *View) Draft() *Draft {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft == nil {
		return nil
	}
	d := *v.draft
	return &d
}

// SetDraft replaces the editable fields of the open draft. No-op when no
// edit is in progress.
func (v *View) SetDraft(firstName, lastName, email string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.draft == nil {
		return
	}
	v.draft.FirstName = firstName
	v.draft.LastName = lastName
	v.draft.Email = email
}

// ConfirmEdit validates the draft and sends the update. Empty fields abort
// with a warning before any network call. On success the confirmed fields
// are merged into the matching record by id and the draft closes; on failure
// the draft stays open for another attempt.
func (v *View) ConfirmEdit(ctx context.Context) {
	v.mu.Lock()
	d := v.draft
	if d == nil {
		v.mu.Unlock()
		return
	}
	if d.FirstName == "" || d.LastName == "" || d.Email == "" {
		v.setNote(msgFieldsRequired, SeverityWarning)
		v.mu.Unlock()
		return
	}
	id := d.UserID
	patch := models.UserPatch{FirstName: d.FirstName, LastName: d.LastName, Email: d.Email}
	v.mu.Unlock()

	_, err := v.api.UpdateUser(ctx, id, patch)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.setNote(msgUpdateFailed, SeverityError)
		return
	}
	for i := range v.users {
		if v.users[i].ID == id {
			v.users[i].FirstName = patch.FirstName
			v.users[i].LastName = patch.LastName
			v.users[i].Email = patch.Email
			break
		}
	}
	v.draft = nil
	v.setNote(msgUpdateOK, SeveritySuccess)
}

// CancelEdit discards the draft without touching the network or the list.
func (v *View) CancelEdit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = nil
}

// Delete removes the record server-side, then mirrors the removal locally.
// There is no confirmation step. On failure the list stays as it was.
func (v *View) Delete(ctx context.Context, id int) {
	err := v.api.DeleteUser(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.setNote(msgDeleteFailed, SeverityError)
		return
	}
	v.users = funk.Filter(v.users, func(u models.User) bool { return u.ID != id }).([]models.User)
	v.setNote(msgDeleteOK, SeveritySuccess)
}

// Reset returns the view to its initial state. Used on logout.
func (v *View) Reset() {
	v.debouncer.Stop()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.users = nil
	v.page = 1
	v.totalPages = 1
	v.loading = false
	v.fetchErr = ""
	v.search = ""
	v.debouncedSearch = ""
	v.draft = nil
	v.note = nil
}
