// Package api is the REST client for the remote user directory service. It
// wraps the four endpoints the application uses (login, list, update,
// delete) and normalizes every failure into a RequestError.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/avolosin/userdeck/internal/client/models"
	"github.com/avolosin/userdeck/internal/logging"
)

// Client talks to one fixed base URL. It performs no caching and no retries.
type Client struct {
	http *resty.Client
	log  logging.Logger
}

// New returns a Client for the service at baseURL.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, log: log.With("component", "api")}
}

// SetToken attaches the session token as a bearer credential to every
// subsequent request.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// serviceError is the structured error body the service may return.
type serviceError struct {
	Message string `json:"error"`
}

// do executes the request and collapses both transport and server failures
// into a RequestError. Every call is logged with a correlation id.
func (c *Client) do(ctx context.Context, req *resty.Request, method, path string) error {
	id := uuid.NewString()
	start := time.Now()

	resp, err := req.SetContext(ctx).SetError(&serviceError{}).Execute(method, path)
	if err != nil {
		c.log.Error(ctx, "request failed",
			"id", id, "method", method, "path", path, "error", err)
		return &RequestError{Message: MsgNetworkError}
	}

	c.log.Info(ctx, "request done",
		"id", id, "method", method, "path", path,
		"status", resp.StatusCode(), "duration", time.Since(start))

	if resp.IsError() {
		if se, ok := resp.Error().(*serviceError); ok && se.Message != "" {
			return &RequestError{Message: se.Message}
		}
		return &RequestError{Message: MsgGenericError}
	}
	return nil
}

// Login exchanges credentials for a session token. A 2xx response with an
// empty token is returned as-is; the caller treats it as invalid
// credentials.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	req := c.http.R().
		SetBody(&loginRequest{Email: email, Password: password}).
		SetResult(&out)

	if err := c.do(ctx, req, http.MethodPost, "/login"); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ListUsers fetches one page of the collection. Every page change issues a
// fresh call.
func (c *Client) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	var out models.UserPage
	req := c.http.R().
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&out)

	if err := c.do(ctx, req, http.MethodGet, "/users"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser sends a partial update of the three editable fields and returns
// the record-like body the service echoes back.
func (c *Client) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	var out models.User
	req := c.http.R().
		SetPathParam("id", strconv.Itoa(id)).
		SetBody(&patch).
		SetResult(&out)

	if err := c.do(ctx, req, http.MethodPut, "/users/{id}"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes the record server-side. The success body is empty.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	req := c.http.R().SetPathParam("id", strconv.Itoa(id))
	return c.do(ctx, req, http.MethodDelete, "/users/{id}")
}
