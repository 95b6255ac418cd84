package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first.")
		return nil
	}

	identifier, err := GetSimpleText(a.reader, "Email or username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	session, err := a.client.Login(ctx, identifier, password)
	if err != nil {
		return err
	}

	a.setSession(ctx, session)
	printlnFn(fmt.Sprintf("Welcome back, %s!", session.User.Username))
	return nil
}
