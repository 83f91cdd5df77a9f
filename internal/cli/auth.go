package cli

import (
	"context"
	"fmt"

	"github.com/greenwood-edu/attendance/internal/auth"
	"github.com/greenwood-edu/attendance/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs the user in. A fresh login always
// re-arms the verification gate, so a previously skipped or verified session
// starts unverified again.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprintln(a.out, "Signing in...")
	s, err := a.manager.Login(ctx, email, string(password))
	if err != nil {
		a.notices.error(err.Error())
		return err
	}

	a.gate.Reset()
	a.engine.Reset()
	a.notices.success(fmt.Sprintf("signed in as %s (%s)", s.Name, s.Role))
	if a.isBlocked() {
		a.notices.info("please verify your email — type 'verify' to receive a code")
	}
	return nil
}

// Signup registers a new account. The account is reachable afterwards only
// through email verification, so the new session starts verified and no code
// is requested.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (Administrator, Faculty or Student)", a.out)
	if err != nil {
		return err
	}

	s, err := a.manager.Register(ctx, auth.RegisterRequest{Name: name, Email: email, Role: role})
	if err != nil {
		a.notices.error(err.Error())
		return err
	}

	a.gate.Reset()
	a.engine.Reset()
	a.notices.success(fmt.Sprintf("account created — welcome, %s", s.Name))
	return nil
}

// Logout ends the session and clears its persisted records.
func (a *App) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		a.notices.error(err.Error())
		return err
	}
	a.engine.Reset()
	a.gate.Reset()
	a.notices.info("signed out")
	return nil
}

// Skip waives verification for the rest of the session. The session stays
// unverified underneath; the next login blocks again.
func (a *App) Skip(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.notices.error(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}
	if !a.isBlocked() {
		a.notices.info("nothing to skip")
		return nil
	}
	a.gate.Skip()
	a.notices.warning("verification skipped — you can verify later with 'verify'")
	return nil
}

// Whoami prints the active session.
func (a *App) Whoami(ctx context.Context) error {
	s := a.manager.Session()
	if s == nil {
		a.notices.info("not signed in")
		return nil
	}
	verified := "no"
	if a.manager.EmailVerified() {
		verified = "yes"
	}
	fmt.Fprintf(a.out, "%s  %s\n  email: %s\n  role: %s\n  verified: %s\n",
		s.Avatar, s.Name, s.Email, s.Role, verified)
	return nil
}
