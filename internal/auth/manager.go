package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/greenwood-edu/attendance/internal/account"
	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/dbx"
	"github.com/greenwood-edu/attendance/internal/logging"
	"github.com/greenwood-edu/attendance/internal/repositories/records"
)

// sleepCtx is a test seam for the simulated login latency. It honors
// context cancellation.
var sleepCtx = func(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// RegisterRequest carries the signup form. Role must name one of the
// closed roles; the custom "role" tag enforces that at validation time.
type RegisterRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Role  string `validate:"required,role"`
}

// Manager owns the Session and the email-verified flag. All access goes
// through its methods; state is replaced whole-value and written through to
// local storage on every change.
type Manager struct {
	store      *account.Store
	db         *sql.DB
	validate   *validator.Validate
	loginDelay time.Duration
	log        logging.Logger

	mu       sync.Mutex
	session  *Session
	verified bool
}

func NewManager(store *account.Store, db *sql.DB, loginDelay time.Duration, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NopLogger{}
	}
	v := validator.New()
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := account.ParseRole(fl.Field().String())
		return err == nil
	})
	return &Manager{
		store:      store,
		db:         db,
		validate:   v,
		loginDelay: loginDelay,
		log:        log,
	}
}

func (m *Manager) getRecordsRepo() records.Repository {
	return records.NewSQLiteRepository(m.db)
}

// Restore rehydrates the session and verified flag from local storage.
// Corrupt or missing records fail soft to the signed-out state; callers run
// this once at startup before anything renders.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo := m.getRecordsRepo()

	data, err := repo.Get(ctx, records.KeySession)
	if err != nil || data == nil {
		return
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		m.log.Warn(ctx, "stored session is corrupt, starting signed out", "error", err)
		return
	}
	m.session = &s

	flag, err := repo.Get(ctx, records.KeyVerified)
	if err == nil && string(flag) == "true" {
		m.verified = true
	}
}

// Login authenticates against the credential store after the simulated
// latency. A fresh login always starts unverified, even if the account
// verified in a previous session. Unknown email and wrong password produce
// the same generic error.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	sleepCtx(ctx, m.loginDelay)

	a, err := m.store.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = sessionFor(a)
	m.verified = false
	if err := m.persistLocked(ctx); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "login successful", "email", a.Email, "role", a.Role)
	return m.snapshotLocked(), nil
}

// Register creates (or replaces) a registered account and signs it in. The
// account gets a random internal secret that is never revealed, so these
// identities re-authenticate only by running the signup flow again. Seed
// emails are refused outright. The new session starts verified: signup
// itself already proved control of the mailbox.
func (m *Manager) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := m.validate.Struct(req); err != nil {
		return nil, err
	}
	role, err := account.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if m.store.IsSeedEmail(req.Email) {
		return nil, common.ErrEmailTaken
	}

	secret, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, err
	}

	a := account.Account{
		ID:       uuid.New().String(),
		Email:    req.Email,
		Password: secret,
		Name:     req.Name,
		Role:     role,
		Avatar:   account.AvatarFor(req.Name),
	}
	if err := m.store.Upsert(ctx, a); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = sessionFor(&a)
	m.verified = true
	if err := m.persistLocked(ctx); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "account registered", "email", a.Email, "role", a.Role)
	return m.snapshotLocked(), nil
}

// Logout destroys the session and clears both persisted records in a single
// transaction.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	m.verified = false

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := records.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, records.KeySession); err != nil {
			return err
		}
		return repo.Delete(ctx, records.KeyVerified)
	})
}

// MarkEmailVerified flips the verified flag for the current session.
func (m *Manager) MarkEmailVerified(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return common.ErrNotAuthenticated
	}
	m.verified = true
	return m.persistLocked(ctx)
}

// Session returns a copy of the current session, or nil when signed out.
func (m *Manager) Session() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// IsAuthenticated reports whether a session exists.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// EmailVerified reports the current verified flag.
func (m *Manager) EmailVerified() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verified
}

// NeedsVerification reports whether a session exists that has not completed
// email verification.
func (m *Manager) NeedsVerification() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil && !m.verified
}

func (m *Manager) snapshotLocked() *Session {
	if m.session == nil {
		return nil
	}
	s := *m.session
	return &s
}

// persistLocked writes both records through to local storage in a single
// transaction, so the session and its verified flag can never land half
// updated. Mutations are never batched; every change lands immediately.
func (m *Manager) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(m.session)
	if err != nil {
		return err
	}

	flag := "false"
	if m.verified {
		flag = "true"
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := records.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, records.KeySession, data); err != nil {
			return err
		}
		return repo.Set(ctx, records.KeyVerified, []byte(flag))
	})
}
