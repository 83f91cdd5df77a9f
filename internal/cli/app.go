package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greenwood-edu/attendance/internal/account"
	"github.com/greenwood-edu/attendance/internal/auth"
	"github.com/greenwood-edu/attendance/internal/config"
	"github.com/greenwood-edu/attendance/internal/logging"
	"github.com/greenwood-edu/attendance/internal/mail"
	"github.com/greenwood-edu/attendance/internal/otp"
	"github.com/greenwood-edu/attendance/internal/repositories/records"
	"github.com/greenwood-edu/attendance/internal/roster"
	"github.com/greenwood-edu/attendance/internal/storage"

	_ "modernc.org/sqlite"
)

// successDelay keeps the success state on screen for a beat after a correct
// code before the session is marked verified.
const successDelay = 1200 * time.Millisecond

// App wires the attendance services behind the interactive shell.
type App struct {
	config   *config.Config
	db       *sql.DB
	manager  *auth.Manager
	gate     *auth.Gate
	engine   *otp.Engine
	notifier *roster.Notifier
	log      logging.Logger

	reader  *bufio.Reader
	out     io.Writer
	notices *notices
	pause   func(ctx context.Context, d time.Duration)
}

// NewApp opens the local database and assembles the full service graph.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NopLogger{}
	}

	db, err := storage.Open(context.Background(), c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := records.NewSQLiteRepository(db)
	store := account.NewStore(repo, log)
	manager := auth.NewManager(store, db, c.LoginDelay, log)
	mailer := mail.NewClient(c.MailEndpoint, c.MailServiceID, c.MailPublicKey, c.MailTimeout, log)

	return &App{
		config:   c,
		db:       db,
		manager:  manager,
		gate:     auth.NewGate(manager),
		engine:   otp.NewEngine(mailer, c.MailVerifyTemplate, c.MailFromName, c.ResendCooldown, log),
		notifier: roster.NewNotifier(mailer, c.MailAlertTemplate, c.MailFromName, c.AlertThreshold, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		notices:  &notices{out: os.Stdout, newID: uuid.NewString},
		pause:    waitFor,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run restores any persisted session and hands control to the shell loop.
// It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.manager.Restore(ctx)
	if a.manager.IsAuthenticated() {
		a.notices.info(fmt.Sprintf("welcome back, %s", a.manager.Session().Name))
	}

	fmt.Fprintln(a.out, "Greenwood attendance shell (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.manager.IsAuthenticated()
}

func (a *App) isBlocked() bool {
	return a.gate.State() == auth.GateBlocked
}

func (a *App) status() string {
	s := a.manager.Session()
	if s == nil {
		return ""
	}
	status := s.Name + " " + strings.ToLower(string(s.Role))
	if a.isBlocked() {
		status += " unverified"
	}
	return fmt.Sprintf("(%s)", status)
}

func waitFor(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
