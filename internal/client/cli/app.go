// Package cli implements the interactive Retro Notes terminal client. It
// keeps the current identity in a durable session file and a cached note
// list in memory, and drives the REST API through the api client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/retronotes/retronotes/internal/client/api"
	"github.com/retronotes/retronotes/internal/client/config"
	"github.com/retronotes/retronotes/internal/client/session"
)

type App struct {
	config   *config.Config
	client   *api.Client
	sessions *session.Store

	session *api.Session
	notes   []api.Note

	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config:   c,
		client:   api.New(c.ServerBaseURL),
		sessions: session.NewStore(c.SessionFile),
		reader:   bufio.NewReader(os.Stdin),
	}
}

// Run restores a saved session if present and enters the REPL.
func (a *App) Run(ctx context.Context) {
	saved, err := a.sessions.Load()
	if err != nil {
		fmt.Println("Could not read saved session, starting logged out:", err)
	} else if saved != nil {
		a.session = saved
		fmt.Printf("Welcome back, %s!\n", saved.User.Username)
		if err := a.refreshNotes(ctx); err != nil {
			fmt.Println(err.Error())
		}
	}

	fmt.Println("Retro Notes CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// status renders the prompt fragment: the current clock plus who is
// logged in.
func (a *App) status() string {
	who := "guest"
	if a.session != nil {
		who = a.session.User.Username
	}
	return fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), who)
}

// setSession installs a new identity: the session is persisted and the note
// cache is reloaded for the new user.
func (a *App) setSession(ctx context.Context, s *api.Session) {
	a.session = s
	a.notes = nil

	if err := a.sessions.Save(s); err != nil {
		fmt.Println("Warning: session not saved:", err)
	}

	if err := a.refreshNotes(ctx); err != nil {
		fmt.Println(err.Error())
	}
}

// clearSession drops the current identity and its cached notes.
func (a *App) clearSession() {
	a.session = nil
	a.notes = nil

	if err := a.sessions.Clear(); err != nil {
		fmt.Println("Warning: session not cleared:", err)
	}
}

// refreshNotes re-fetches the note list for the current identity. An
// expired or revoked token logs the user out instead of failing every
// subsequent command.
func (a *App) refreshNotes(ctx context.Context) error {
	if a.session == nil {
		return nil
	}

	notes, err := a.client.ListNotes(ctx, a.session.Token)
	if err != nil {
		if api.IsUnauthorized(err) {
			a.clearSession()
			return fmt.Errorf("session expired, please log in again")
		}
		return fmt.Errorf("could not load notes: %w", err)
	}

	a.notes = notes
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Not logged in.")
		return nil
	}

	u := a.session.User
	printlnFn(fmt.Sprintf("%s <%s> (%s)", u.FullName, u.Email, u.Username))
	return nil
}
