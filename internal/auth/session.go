// Package auth owns the client session: who is signed in, whether their
// email is verified, and the verification gate that blocks unverified
// sessions. Session state lives entirely in this client; every mutation is
// written through to local storage so a restart resumes where it left off.
package auth

import (
	"github.com/greenwood-edu/attendance/internal/account"
)

// Session is the authenticated identity: the account data minus its
// password. The password deliberately has no field here so it can never
// leak into persisted session state.
type Session struct {
	AccountID string       `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Role      account.Role `json:"role"`
	Avatar    string       `json:"avatar"`
}

func sessionFor(a *account.Account) *Session {
	return &Session{
		AccountID: a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Avatar:    a.Avatar,
	}
}
