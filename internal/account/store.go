package account

import (
	"context"
	"encoding/json"

	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/logging"
	"github.com/greenwood-edu/attendance/internal/repositories/records"
)

// Store answers credential-lookup queries over the union of the seed roster
// and the registered set persisted in local storage.
type Store struct {
	seed []Account
	repo records.Repository
	log  logging.Logger
}

func NewStore(repo records.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Store{seed: SeedAccounts(), repo: repo, log: log}
}

// FindByCredentials matches email case-insensitively and password exactly,
// searching seed accounts before registered ones. Returns
// common.ErrNotFound when nothing matches.
func (s *Store) FindByCredentials(ctx context.Context, email, password string) (*Account, error) {
	for _, a := range s.seed {
		if EmailsEqual(a.Email, email) && a.Password == password {
			found := a
			return &found, nil
		}
	}
	for _, a := range s.ListRegistered(ctx) {
		if EmailsEqual(a.Email, email) && a.Password == password {
			found := a
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

// Upsert replaces any registered account with the same email (case
// insensitive) and persists the whole registered set.
func (s *Store) Upsert(ctx context.Context, a Account) error {
	existing := s.ListRegistered(ctx)

	updated := make([]Account, 0, len(existing)+1)
	for _, r := range existing {
		if !EmailsEqual(r.Email, a.Email) {
			updated = append(updated, r)
		}
	}
	updated = append(updated, a)

	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, records.KeyRegistered, data)
}

// ListRegistered reads the persisted registered set. It fails soft: a
// missing or corrupt record yields an empty slice, never an error.
func (s *Store) ListRegistered(ctx context.Context) []Account {
	data, err := s.repo.Get(ctx, records.KeyRegistered)
	if err != nil || data == nil {
		return nil
	}

	var out []Account
	if err := json.Unmarshal(data, &out); err != nil {
		s.log.Warn(ctx, "registered accounts record is corrupt, treating as empty", "error", err)
		return nil
	}
	return out
}

// IsSeedEmail reports whether email belongs to the fixed demo roster.
// Registration refuses such emails so a registered record can never collide
// with a seed account at lookup time; re-registering a registered email is
// allowed and replaces the prior record.
func (s *Store) IsSeedEmail(email string) bool {
	for _, a := range s.seed {
		if EmailsEqual(a.Email, email) {
			return true
		}
	}
	return false
}
