package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devopschat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for an email and password and creates an account. The
// user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.api.Register(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you can login now.")
	return nil
}

// Login prompts for credentials and remembers the user id on success.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	userID, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.userID, a.email = userID, email
	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

// Logout forgets the current user.
func (a *App) Logout(ctx context.Context) error {
	a.userID, a.email = "", ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
