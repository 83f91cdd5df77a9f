package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/greenwood-edu/attendance/internal/auth"
	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/otp"
)

// Verify runs the email-verification flow: it dispatches a code to the
// session's address and drives the six-digit entry until the code is
// accepted, the user skips, or the user cancels back to the shell.
//
// Digit input follows the on-screen boxes: typed digits land at the focused
// box and advance it, a pasted run fills forward from the focus, "back"
// clears the focused box or steps left. Submission happens automatically
// once all six boxes are filled.
func (a *App) Verify(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.notices.error(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}
	if !a.manager.NeedsVerification() {
		a.notices.info("email already verified")
		return nil
	}

	s := a.manager.Session()
	a.dispatchCode(ctx, s)

	entry := otp.NewEntry()
	for {
		a.renderEntry(entry)

		tok, err := getSimpleText(a.reader, "Enter digits, or: submit, back, clear, resend, skip, cancel", a.out)
		if err != nil {
			return err
		}

		switch tok {
		case "":
			continue

		case "cancel":
			return nil

		case "skip":
			return a.Skip(ctx)

		case "resend":
			if !a.engine.CanResend() {
				a.notices.warning(fmt.Sprintf("please wait %d s before requesting a new code", a.engine.CooldownRemaining()))
				continue
			}
			entry.Clear()
			a.dispatchCode(ctx, s)

		case "back", "b":
			entry.Backspace(entry.Focus())

		case "clear":
			entry.Clear()

		case "submit", "done":
			if !entry.Complete() {
				a.notices.error(common.ErrEntryIncomplete.Error())
				continue
			}
			if a.submitCode(ctx, entry) {
				return nil
			}

		default:
			entry.Input(entry.Focus(), tok)
			if entry.Complete() && a.submitCode(ctx, entry) {
				return nil
			}
		}
	}
}

func (a *App) dispatchCode(ctx context.Context, s *auth.Session) {
	fmt.Fprintf(a.out, "Sending a verification code to %s ...\n", s.Email)
	res := a.engine.Send(ctx, s.Email, s.Name)
	if !res.OK {
		a.notices.error(res.Err)
		return
	}
	a.notices.success("verification code sent — check your inbox")
}

// submitCode checks the entered code. A mismatch clears the boxes and keeps
// the flow alive; a match marks the session verified after a short pause.
func (a *App) submitCode(ctx context.Context, entry *otp.Entry) bool {
	if err := a.engine.Verify(entry.Code()); err != nil {
		a.notices.error(err.Error())
		entry.Clear()
		return false
	}

	fmt.Fprintln(a.out, "Code accepted!")
	a.pause(ctx, successDelay)

	if err := a.manager.MarkEmailVerified(ctx); err != nil {
		a.notices.error(err.Error())
		return false
	}
	a.notices.success("email verified")
	return true
}

func (a *App) renderEntry(e *otp.Entry) {
	var b strings.Builder
	for i, d := range e.Digits() {
		l, r := "[", "]"
		if i == e.Focus() {
			l, r = "(", ")"
		}
		if d == "" {
			d = "_"
		}
		b.WriteString(l + d + r + " ")
	}
	fmt.Fprintln(a.out, strings.TrimSpace(b.String()))
}
