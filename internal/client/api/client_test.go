package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DecodesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var in RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "neonUser", in.Username)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Session{
			User:  User{ID: "u1", FullName: "Jamie Neon", Username: "neonUser", Email: "jamie@x.com"},
			Token: "tok",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	session, err := c.Register(context.Background(), RegisterInput{Username: "neonUser"})
	require.NoError(t, err)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "tok", session.Token)
}

func TestErrorResponse_CarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Email or username already in use"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), RegisterInput{})
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Email or username already in use", apiErr.Error())
}

func TestListNotes_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Note{{ID: "n1", Title: "Buy milk"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	notes, err := c.ListNotes(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Buy milk", notes[0].Title)
}

func TestDeleteNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Note not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteNote(context.Background(), "tok", "missing")
	require.Error(t, err)
	assert.Equal(t, "Note not found", err.Error())
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Status: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&Error{Status: http.StatusNotFound}))
	assert.False(t, IsUnauthorized(context.Canceled))
}
