package cli

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgRegistered = "User registered successfully!"
	msgLoggedIn   = "Login successful!"
	msgLoggedOut  = "Logged out."
)

// SignUp prompts for username, email and password and creates an account.
// A new user is logged in straight away and sees their task list.
func (a *App) SignUp(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.accounts.SignUp(ctx, username, email, string(password))
	if err != nil {
		a.showError(err)
		return err
	}

	a.user = user
	a.showMessage(common.TitleSuccess, msgRegistered)
	return a.List(ctx)
}

// Login prompts for email and password. On success the user's tasks are
// listed, seeding them on the very first login.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.accounts.LogIn(ctx, email, string(password))
	if err != nil {
		a.showError(err)
		return err
	}

	a.user = user
	a.showMessage(common.TitleSuccess, msgLoggedIn)
	return a.List(ctx)
}

// Logout forgets the current user. Stored data is left untouched.
func (a *App) Logout(ctx context.Context) error {
	if a.user != nil {
		a.logger.Info(ctx, "user logged out", "user_id", a.user.ID)
	}
	a.user = nil
	a.showMessage(common.TitleSuccess, msgLoggedOut)
	return nil
}
