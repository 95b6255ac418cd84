package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Delete removes the note at the given 1-based list position. If the server
// rejects the delete the local list is re-fetched, since the usual cause is
// a stale index.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	if len(args) != 1 {
		printlnFn("Usage: delete <n>  (n is the note number from 'list')")
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.notes) {
		printlnFn(fmt.Sprintf("No note number %s. Run 'list' to see current numbers.", args[0]))
		return nil
	}

	note := a.notes[n-1]
	if err := a.client.DeleteNote(ctx, a.session.Token, note.ID); err != nil {
		if refreshErr := a.refreshNotes(ctx); refreshErr != nil {
			return refreshErr
		}
		return err
	}

	printlnFn(fmt.Sprintf("Deleted %q.", note.Title))
	return a.refreshNotes(ctx)
}
