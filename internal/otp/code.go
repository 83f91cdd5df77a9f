// Package otp implements the email verification challenge: code generation,
// the single live code with its resend cooldown, and the six digit-box entry
// buffer the shell drives.
package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// GenerateCode returns a uniformly random code in [100000, 999999], so the
// result is always exactly six digits and never collapses to a zero-padded
// shorter number.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(100000+n.Int64(), 10), nil
}
