package otp

import (
	"context"
	"sync"
	"time"

	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/logging"
	"github.com/greenwood-edu/attendance/internal/mail"
)

// Status describes the lifecycle of the outstanding challenge.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusError     Status = "error"
	StatusVerifying Status = "verifying"
	StatusSuccess   Status = "success"
)

// afterFunc is a test seam for time.AfterFunc, so cooldown ticks can be
// driven manually in tests.
var afterFunc = time.AfterFunc

// Engine owns the single outstanding verification challenge: at most one
// code is live at a time, a resend replaces it, and the resend cooldown
// counts down once per second. The cooldown is advisory UI state only; the
// engine performs no rate limiting of its own.
type Engine struct {
	sender     mail.Sender
	templateID string
	fromName   string
	cooldown   time.Duration
	log        logging.Logger

	mu        sync.Mutex
	code      string
	status    Status
	remaining int
	timer     *time.Timer
}

func NewEngine(sender mail.Sender, templateID, fromName string, cooldown time.Duration, log logging.Logger) *Engine {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Engine{
		sender:     sender,
		templateID: templateID,
		fromName:   fromName,
		cooldown:   cooldown,
		log:        log,
		status:     StatusIdle,
	}
}

// Send generates a fresh code and dispatches it to email. The new code
// replaces the previous one before the mail leaves, so a stale code can
// never be accepted after a resend. On a successful send the resend
// cooldown starts.
func (e *Engine) Send(ctx context.Context, email, name string) mail.Result {
	code, err := GenerateCode()
	if err != nil {
		return mail.Result{Err: "failed to generate verification code"}
	}

	e.mu.Lock()
	e.code = code
	e.status = StatusSending
	e.mu.Unlock()

	res := e.sender.Send(ctx, e.templateID, mail.VerificationParams(email, name, code, e.fromName))

	e.mu.Lock()
	defer e.mu.Unlock()
	if res.OK {
		e.status = StatusSent
		e.startCooldownLocked()
		e.log.Info(ctx, "verification code sent", "to", email)
	} else {
		e.status = StatusError
		e.log.Warn(ctx, "verification code send failed", "to", email, "error", res.Err)
	}
	return res
}

// Verify checks the completed entry buffer against the live code. The
// caller must reject incomplete entries before calling. A mismatch leaves
// the stored code unchanged so the user can retry; a match consumes it.
func (e *Engine) Verify(entered string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.code == "" {
		return common.ErrNoActiveCode
	}

	e.status = StatusVerifying
	if entered != e.code {
		e.status = StatusError
		return common.ErrCodeMismatch
	}

	e.code = ""
	e.status = StatusSuccess
	return nil
}

// CanResend reports whether the advisory cooldown has run out.
func (e *Engine) CanResend() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining == 0
}

// CooldownRemaining returns the advisory countdown in whole seconds.
func (e *Engine) CooldownRemaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Status returns the current challenge status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Reset discards the outstanding challenge, for when the verification flow
// is dismissed or the session ends. Codes are never persisted.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.code = ""
	e.status = StatusIdle
	e.remaining = 0
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) startCooldownLocked() {
	e.remaining = int(e.cooldown / time.Second)
	if e.timer != nil {
		e.timer.Stop()
	}
	if e.remaining > 0 {
		e.timer = afterFunc(time.Second, e.tick)
	}
}

func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.remaining == 0 {
		return
	}
	e.remaining--
	if e.remaining > 0 {
		e.timer = afterFunc(time.Second, e.tick)
	}
}
