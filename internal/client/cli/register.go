package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/retronotes/retronotes/internal/client/api"
)

// Register walks the user through the sign-up form. The chosen username is
// checked for availability up front so the user learns about a clash before
// typing the rest of the form.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first.")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Pick a username", os.Stdout)
	if err != nil {
		return err
	}

	if username != "" {
		available, err := a.client.CheckUsername(ctx, username)
		if err != nil {
			return err
		}
		if !available {
			printlnFn("That username is taken, try another one.")
			return nil
		}
	}

	fullName, err := GetSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}

	dob, err := GetSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	confirm, err := GetPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	session, err := a.client.Register(ctx, api.RegisterInput{
		FullName:        fullName,
		DOB:             dob,
		Email:           email,
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}

	a.setSession(ctx, session)
	printlnFn(fmt.Sprintf("Welcome, %s!", session.User.Username))
	return nil
}
