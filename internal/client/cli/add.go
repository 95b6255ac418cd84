package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.client.CreateNote(ctx, a.session.Token, title, content)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Saved %q.", note.Title))
	return a.refreshNotes(ctx)
}
