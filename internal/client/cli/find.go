package cli

import (
	"context"
	"strings"

	"github.com/retronotes/retronotes/internal/client/api"
)

// Find prints the cached notes whose title or content contains the given
// text, case-insensitively. Matching is local; no server round trip.
func (a *App) Find(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: find <text>")
		return nil
	}

	matches := FilterNotes(a.notes, strings.Join(args, " "))
	if len(matches) == 0 {
		printlnFn("No matching notes.")
		return nil
	}

	printNotes(matches)
	return nil
}

// FilterNotes returns the notes whose title or content contains query,
// ignoring case. Order is preserved.
func FilterNotes(notes []api.Note, query string) []api.Note {
	q := strings.ToLower(query)

	var matches []api.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			matches = append(matches, n)
		}
	}
	return matches
}
