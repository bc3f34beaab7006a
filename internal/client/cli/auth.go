package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nbassil/campuslink/internal/client/gateway"
	"github.com/nbassil/campuslink/internal/client/session"
	"github.com/nbassil/campuslink/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in. An account that never finished
// email verification lands in the pending state and the user is pointed at
// the verify command.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	if err := a.sessions.SignIn(ctx, email, string(password)); err != nil {
		if errors.Is(err, gateway.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
		} else {
			printlnFn("Login failed:", err)
		}
		return err
	}

	if a.sessions.Current().Status == session.StatusPendingVerification {
		printlnFn("Account not verified yet; check your inbox and run 'verify'.")
		return nil
	}
	printlnFn("Success!")
	return nil
}

// SignUp prompts for the new account's details and registers it. The account
// stays pending until the emailed code is entered via Verify.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	major, err := getSimpleText(a.reader, "Enter major", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.SignUp(ctx, email, string(password), major); err != nil {
		printlnFn("Sign-up failed:", err)
		return err
	}

	printlnFn("Account created. Check your inbox and run 'verify'.")
	return nil
}

// Verify completes email verification with the code the user received.
func (a *App) Verify(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.Verify(ctx, code); err != nil {
		if errors.Is(err, session.ErrNoPendingSignUp) {
			printlnFn("Nothing to verify; sign up or log in first.")
		} else {
			printlnFn("Verification failed:", err)
		}
		return err
	}

	printlnFn("Success!")
	return nil
}

// Logout signs out locally regardless of backend reachability.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.SignOut(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Current()
	switch s.Status {
	case session.StatusAuthenticated:
		role := "user"
		if s.IsAdmin() {
			role = "admin"
		}
		printlnFn(fmt.Sprintf("%s (%s)", s.Credential.Email, role))
	case session.StatusPendingVerification:
		printlnFn(s.Credential.Email, "(awaiting verification)")
	default:
		printlnFn("Not logged in.")
	}
	return nil
}
