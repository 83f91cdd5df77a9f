package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/greenwood-edu/attendance/internal/account"
	"github.com/greenwood-edu/attendance/internal/auth"
	"github.com/greenwood-edu/attendance/internal/mail"
	"github.com/greenwood-edu/attendance/internal/otp"
	"github.com/greenwood-edu/attendance/internal/repositories/records"
	"github.com/greenwood-edu/attendance/internal/roster"

	_ "modernc.org/sqlite"
)

type fakeSender struct {
	templates []string
	params    []map[string]any
	fail      bool
}

func (f *fakeSender) Send(_ context.Context, templateID string, params map[string]any) mail.Result {
	f.templates = append(f.templates, templateID)
	f.params = append(f.params, params)
	if f.fail {
		return mail.Result{Err: "service unavailable"}
	}
	return mail.Result{OK: true}
}

func (f *fakeSender) lastCode() string {
	if len(f.params) == 0 {
		return ""
	}
	code, _ := f.params[len(f.params)-1]["verification_code"].(string)
	return code
}

func newTestApp(t *testing.T, sender mail.Sender) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	repo := records.NewSQLiteRepository(db)
	store := account.NewStore(repo, nil)
	manager := auth.NewManager(store, db, 0, nil)

	out := &bytes.Buffer{}
	nextID := 0
	return &App{
		db:       db,
		manager:  manager,
		gate:     auth.NewGate(manager),
		engine:   otp.NewEngine(sender, "template_verify", "Greenwood", time.Minute, nil),
		notifier: roster.NewNotifier(sender, "template_alert", "Greenwood", 75, nil),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
		notices: &notices{out: out, newID: func() string {
			nextID++
			return fmt.Sprintf("n-%d", nextID)
		}},
		pause: func(context.Context, time.Duration) {},
	}, out
}

// stubInputs scripts the interactive prompts: each call to the text helper
// pops the next token (funcs are called lazily so the script can depend on
// state created mid-flow), and the password helper always returns password.
func stubInputs(t *testing.T, password string, tokens ...func() string) {
	t.Helper()

	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(tokens) {
			return "", io.EOF
		}
		tok := tokens[i]()
		i++
		return tok, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func lit(s string) func() string {
	return func() string { return s }
}
