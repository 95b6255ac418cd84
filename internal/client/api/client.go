// Package api is the typed REST client for the Retro Notes server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// User mirrors the public user projection returned by the server.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Note mirrors a note as returned by the server.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the identity established by register/login: the public user
// plus the bearer token for subsequent requests.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName        string `json:"fullName"`
	DOB             string `json:"dob"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Error is a non-2xx response from the server, carrying the HTTP status and
// the server's human-readable message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckUsername asks the server whether the username is still available.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var out struct {
		Available bool `json:"available"`
	}
	path := "/api/auth/check-username?username=" + url.QueryEscape(username)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

// Register creates a new account and returns the established session.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	session := &Session{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", in, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Login authenticates by email or username and returns the session.
func (c *Client) Login(ctx context.Context, identifier, password string) (*Session, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	session := &Session{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListNotes fetches the caller's notes, newest first.
func (c *Client) ListNotes(ctx context.Context, token string) ([]Note, error) {
	notes := []Note{}
	if err := c.do(ctx, http.MethodGet, "/api/notes", token, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote stores a new note and returns it with id and timestamps.
func (c *Client) CreateNote(ctx context.Context, token, title, content string) (*Note, error) {
	body := map[string]string{"title": title, "content": content}
	note := &Note{}
	if err := c.do(ctx, http.MethodPost, "/api/notes", token, body, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes one of the caller's notes by id.
func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
