// Package account defines the Account model and the credential store that
// answers lookup queries over the seed roster and self-registered accounts.
package account

import (
	"strings"

	"github.com/greenwood-edu/attendance/internal/common"
)

// Role is the closed set of positions an account can hold.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleFaculty       Role = "Faculty"
	RoleStudent       Role = "Student"
)

// ParseRole validates s against the known roles.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleAdministrator:
		return RoleAdministrator, nil
	case RoleFaculty:
		return RoleFaculty, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", common.ErrInvalidRole
	}
}

// Account represents a person who can sign in. Email is the identity key,
// compared case-insensitively everywhere.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
}

// AvatarFor derives the avatar label from name initials: at most two
// characters, uppercase.
func AvatarFor(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}

// EmailsEqual reports whether two emails identify the same account.
func EmailsEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
