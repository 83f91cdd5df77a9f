package account

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/repositories/records"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*Store, records.Repository) {
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
	return NewStore(repo, nil), repo
}

func TestFindByCredentials_SeedMatch(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	a, err := s.FindByCredentials(ctx, "admin@greenwood.edu", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", a.Name)
	assert.Equal(t, RoleAdministrator, a.Role)
}

func TestFindByCredentials_EmailCaseInsensitive(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	a, err := s.FindByCredentials(ctx, "ADMIN@Greenwood.EDU", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@greenwood.edu", a.Email)
}

func TestFindByCredentials_WrongPassword(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.FindByCredentials(ctx, "admin@greenwood.edu", "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindByCredentials_UnknownEmail(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.FindByCredentials(ctx, "ghost@example.com", "admin123")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpsert_AppendsAndFindsRegistered(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	a := Account{
		ID:       "r1",
		Email:    "new@uni.edu",
		Password: "s3cret",
		Name:     "New Person",
		Role:     RoleStudent,
		Avatar:   "NP",
	}
	require.NoError(t, s.Upsert(ctx, a))

	found, err := s.FindByCredentials(ctx, "NEW@uni.edu", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "New Person", found.Name)
}

func TestUpsert_ReplacesByEmail(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, Account{Email: "dup@uni.edu", Name: "First", Role: RoleStudent}))
	require.NoError(t, s.Upsert(ctx, Account{Email: "DUP@uni.edu", Name: "Second", Role: RoleFaculty}))

	regs := s.ListRegistered(ctx)
	require.Len(t, regs, 1)
	assert.Equal(t, "Second", regs[0].Name)
	assert.Equal(t, RoleFaculty, regs[0].Role)
}

func TestListRegistered_FailsSoftOnCorruptRecord(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, records.KeyRegistered, []byte("{not json")))

	assert.Empty(t, s.ListRegistered(ctx))
}

func TestListRegistered_EmptyWhenMissing(t *testing.T) {
	s, _ := setupStore(t)
	assert.Empty(t, s.ListRegistered(context.Background()))
}

func TestIsSeedEmail(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	assert.True(t, s.IsSeedEmail("Admin@Greenwood.edu"))
	assert.False(t, s.IsSeedEmail("free@uni.edu"))

	// Registered emails are not seed emails: re-registration stays possible.
	require.NoError(t, s.Upsert(ctx, Account{Email: "free@uni.edu", Role: RoleStudent}))
	assert.False(t, s.IsSeedEmail("free@uni.edu"))
}
