package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolosin/userdeck/internal/client/api"
	"github.com/avolosin/userdeck/internal/client/config"
	"github.com/avolosin/userdeck/internal/client/models"
	"github.com/avolosin/userdeck/internal/client/users"
	"github.com/avolosin/userdeck/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// fakeRemote stands in for the API client on both of its faces: the login
// surface the app uses and the CRUD surface the users view uses.
type fakeRemote struct {
	loginToken string
	loginErr   error
	gotEmail   string
	gotPass    string
	token      string

	page     *models.UserPage
	listErr  error
	updCalls int
	delCalls int
	lastDel  int
}

func (f *fakeRemote) Login(ctx context.Context, email, password string) (string, error) {
	f.gotEmail = email
	f.gotPass = password
	return f.loginToken, f.loginErr
}

func (f *fakeRemote) SetToken(token string) { f.token = token }

func (f *fakeRemote) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page, nil
}

func (f *fakeRemote) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	f.updCalls++
	return &models.User{ID: id, FirstName: patch.FirstName, LastName: patch.LastName, Email: patch.Email}, nil
}

func (f *fakeRemote) DeleteUser(ctx context.Context, id int) error {
	f.delCalls++
	f.lastDel = id
	return nil
}

type fakeStore struct {
	token   string
	saveErr error
}

func (f *fakeStore) Load() (string, error)   { return f.token, nil }
func (f *fakeStore) Save(token string) error { f.token = token; return f.saveErr }
func (f *fakeStore) Clear() error            { f.token = ""; return nil }

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { readPassword = orig })
}

func onePage() *models.UserPage {
	return &models.UserPage{
		Page: 1, PerPage: 2, Total: 2, TotalPages: 1,
		Data: []models.User{
			{ID: 1, FirstName: "George", LastName: "Bluth", Email: "george.bluth@reqres.in"},
			{ID: 2, FirstName: "Janet", LastName: "Weaver", Email: "janet.weaver@reqres.in"},
		},
	}
}

func newTestApp(t *testing.T, remote *fakeRemote, store *fakeStore, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	if remote.page == nil {
		remote.page = onePage()
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DebounceInterval = 10 * time.Millisecond

	out := &bytes.Buffer{}
	view := users.NewView(remote, logging.NewNopLogger(), cfg.DebounceInterval, cfg.NotificationTTL)

	return &App{
		config:   cfg,
		api:      remote,
		sessions: store,
		view:     view,
		log:      logging.NewNopLogger(),
		reader:   readerFromLines(lines...),
		out:      out,
	}, out
}

// ------------ login / logout ------------

func TestApp_Login(t *testing.T) {
	t.Run("success stores token and shows page one", func(t *testing.T) {
		stubPassword(t, "cityslicka")
		remote := &fakeRemote{loginToken: "QpwL5tke4Pnpja7X4"}
		store := &fakeStore{}
		a, out := newTestApp(t, remote, store, "eve.holt@reqres.in")

		require.NoError(t, a.Login(context.Background()))

		assert.True(t, a.isLoggedIn())
		assert.Equal(t, "eve.holt@reqres.in", remote.gotEmail)
		assert.Equal(t, "cityslicka", remote.gotPass)
		assert.Equal(t, "QpwL5tke4Pnpja7X4", store.token)
		assert.Equal(t, "QpwL5tke4Pnpja7X4", remote.token, "token attached to subsequent requests")
		assert.Contains(t, out.String(), "Janet Weaver")
		assert.Contains(t, out.String(), "Page 1 of 1")
	})

	t.Run("missing token in response means invalid credentials", func(t *testing.T) {
		stubPassword(t, "whatever")
		remote := &fakeRemote{loginToken: ""}
		store := &fakeStore{}
		a, out := newTestApp(t, remote, store, "eve.holt@reqres.in")

		require.NoError(t, a.Login(context.Background()))

		assert.False(t, a.isLoggedIn())
		assert.Empty(t, store.token)
		assert.Contains(t, out.String(), "Invalid credentials!")
	})

	t.Run("request failure surfaces its message and stays put", func(t *testing.T) {
		stubPassword(t, "whatever")
		remote := &fakeRemote{loginErr: &api.RequestError{Message: "user not found"}}
		store := &fakeStore{}
		a, out := newTestApp(t, remote, store, "nobody@nowhere")

		require.NoError(t, a.Login(context.Background()))

		assert.False(t, a.isLoggedIn())
		assert.Contains(t, out.String(), "user not found")
	})

	t.Run("empty fields are submitted, not blocked locally", func(t *testing.T) {
		stubPassword(t, "")
		remote := &fakeRemote{loginErr: &api.RequestError{Message: "Missing email or username"}}
		store := &fakeStore{}
		a, _ := newTestApp(t, remote, store, "")

		require.NoError(t, a.Login(context.Background()))

		assert.Equal(t, "", remote.gotEmail, "the service decides, not the client")
	})
}

func TestApp_Logout(t *testing.T) {
	muteREPL(t)
	remote := &fakeRemote{}
	store := &fakeStore{token: "tok123"}
	a, _ := newTestApp(t, remote, store)
	a.token = "tok123"
	a.view.LoadPage(context.Background(), 1)

	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.isLoggedIn())
	assert.Empty(t, store.token)
	assert.Empty(t, remote.token)
	assert.Empty(t, a.view.Visible())
	assert.Equal(t, "login", a.status())
}

// ------------ users screen commands ------------

func TestApp_Page(t *testing.T) {
	lines := muteREPL(t)
	remote := &fakeRemote{}
	a, out := newTestApp(t, remote, &fakeStore{})
	a.view.LoadPage(context.Background(), 1)

	require.NoError(t, a.Page(context.Background(), []string{"1"}))
	assert.Contains(t, out.String(), "George Bluth")

	require.NoError(t, a.Page(context.Background(), []string{"nope"}))
	assert.Contains(t, strings.Join(*lines, "\n"), "Usage: page <number>")
}

func TestApp_SearchFiltersAfterDebounce(t *testing.T) {
	remote := &fakeRemote{}
	a, out := newTestApp(t, remote, &fakeStore{})
	a.view.LoadPage(context.Background(), 1)

	require.NoError(t, a.Search(context.Background(), []string{"janet"}))

	s := out.String()
	assert.Contains(t, s, "Janet Weaver")
	assert.NotContains(t, s, "George Bluth")
}

func TestApp_Edit(t *testing.T) {
	t.Run("confirmed edit updates the list", func(t *testing.T) {
		remote := &fakeRemote{}
		a, out := newTestApp(t, remote, &fakeStore{},
			"Janet", "Weaver", "janet.w@reqres.in", "y")
		a.view.LoadPage(context.Background(), 1)

		require.NoError(t, a.Edit(context.Background(), []string{"2"}))

		assert.Equal(t, 1, remote.updCalls)
		assert.Contains(t, out.String(), "User updated successfully!")

		found := false
		for _, u := range a.view.Visible() {
			if u.ID == 2 {
				assert.Equal(t, "janet.w@reqres.in", u.Email)
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("declined edit makes no call", func(t *testing.T) {
		remote := &fakeRemote{}
		a, _ := newTestApp(t, remote, &fakeStore{},
			"Janet", "Weaver", "janet.w@reqres.in", "n")
		a.view.LoadPage(context.Background(), 1)

		require.NoError(t, a.Edit(context.Background(), []string{"2"}))

		assert.Equal(t, 0, remote.updCalls)
		assert.Nil(t, a.view.Draft())
	})

	t.Run("blank field warns and skips the network", func(t *testing.T) {
		remote := &fakeRemote{}
		a, out := newTestApp(t, remote, &fakeStore{},
			"Janet", "", "janet.w@reqres.in", "y")
		a.view.LoadPage(context.Background(), 1)

		require.NoError(t, a.Edit(context.Background(), []string{"2"}))

		assert.Equal(t, 0, remote.updCalls)
		assert.Contains(t, out.String(), "All fields are required!")
	})

	t.Run("unknown id warns", func(t *testing.T) {
		remote := &fakeRemote{}
		a, out := newTestApp(t, remote, &fakeStore{})
		a.view.LoadPage(context.Background(), 1)

		require.NoError(t, a.Edit(context.Background(), []string{"42"}))

		assert.Equal(t, 0, remote.updCalls)
		assert.Contains(t, out.String(), "User is not on the current page.")
	})
}

func TestApp_Delete(t *testing.T) {
	remote := &fakeRemote{}
	a, out := newTestApp(t, remote, &fakeStore{})
	a.view.LoadPage(context.Background(), 1)

	require.NoError(t, a.Delete(context.Background(), []string{"2"}))

	assert.Equal(t, 1, remote.delCalls)
	assert.Equal(t, 2, remote.lastDel)
	assert.Contains(t, out.String(), "User deleted successfully!")
	require.Len(t, a.view.Visible(), 1)
	assert.Equal(t, 1, a.view.Visible()[0].ID)
}

func TestApp_Status(t *testing.T) {
	remote := &fakeRemote{}
	a, _ := newTestApp(t, remote, &fakeStore{})

	assert.Equal(t, "login", a.status())

	a.token = "tok"
	a.view.LoadPage(context.Background(), 1)
	assert.Equal(t, "users 1/1", a.status())
}
