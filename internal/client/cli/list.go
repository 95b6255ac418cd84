package cli

import (
	"context"
	"fmt"

	"github.com/retronotes/retronotes/internal/client/api"
)

// List re-fetches and prints the user's notes, newest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	if err := a.refreshNotes(ctx); err != nil {
		return err
	}

	printNotes(a.notes)
	return nil
}

// printNotes renders notes with 1-based indexes; those indexes are what the
// delete command accepts.
func printNotes(notes []api.Note) {
	if len(notes) == 0 {
		printlnFn("No notes yet. Use 'add' to create one.")
		return
	}

	for i, n := range notes {
		printlnFn(fmt.Sprintf("%d. [%s] %s", i+1, n.CreatedAt.Format("2006-01-02 15:04"), n.Title))
		if n.Content != "" {
			printlnFn("   " + n.Content)
		}
	}
}
