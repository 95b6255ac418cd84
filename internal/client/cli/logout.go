package cli

import "context"

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	a.clearSession()
	printlnFn("Logged out.")
	return nil
}
