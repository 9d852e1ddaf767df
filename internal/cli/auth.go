package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email")
	if err != nil {
		return err
	}
	password, err := getPassword("Password")
	if err != nil {
		return err
	}

	s, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		a.pending = nil
		return err
	}
	printlnFn(okStyle.Render(fmt.Sprintf("Signed in as %s", displayName(s))))
	return a.replayPending(ctx)
}

func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name")
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email")
	if err != nil {
		return err
	}
	password, err := getPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		printlnFn(errStyle.Render("Passwords do not match."))
		return errAborted
	}

	s, err := a.sessions.Signup(ctx, name, email, password)
	if err != nil {
		a.pending = nil
		return err
	}
	printlnFn(okStyle.Render(fmt.Sprintf("Account created, signed in as %s", displayName(s))))
	return a.replayPending(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup", "error", err)
	}
	printlnFn("Signed out.")
	return nil
}
