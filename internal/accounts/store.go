package accounts

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/bankist-dev/bankist/internal/model"
)

// Store provides in-memory lookup over the bank's accounts.
//
// Usernames are not unique: two owners with the same initials share a
// username and lookups return whichever was seeded first.
type Store struct {
	accounts []*model.Account
}

// NewStore creates a Store from seed accounts. Each account is copied, given
// a fresh ID and a username derived from its owner.
func NewStore(seed []model.Account) *Store {
	accts := make([]*model.Account, 0, len(seed))
	for _, a := range seed {
		a.ID = uuid.New()
		a.Username = DeriveUsername(a.Owner)
		a.Movements = slices.Clone(a.Movements)
		a.MovementsDates = slices.Clone(a.MovementsDates)
		accts = append(accts, &a)
	}
	return &Store{accounts: accts}
}

// DeriveUsername returns the lowercase initials of the space-separated
// tokens of owner. "Jonas Schmedtmann" -> "js"
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(owner) {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ParsePIN converts PIN input to its numeric form. Surrounding whitespace
// is ignored.
func ParsePIN(s string) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing pin: %w", err)
	}
	return pin, nil
}

// Find returns the account matching both username and pin.
func (s *Store) Find(username string, pin int) (*model.Account, bool) {
	for _, a := range s.accounts {
		if a.Username == username && a.PIN == pin {
			return a, true
		}
	}
	return nil, false
}

// Lookup returns the first account with the given username.
func (s *Store) Lookup(username string) (*model.Account, bool) {
	for _, a := range s.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return nil, false
}

// ByID returns the account with the given ID, if it is still in the store.
func (s *Store) ByID(id uuid.UUID) (*model.Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Remove deletes the first account with the given username. It reports
// whether an account was removed; an unknown username is a no-op.
func (s *Store) Remove(username string) bool {
	i := slices.IndexFunc(s.accounts, func(a *model.Account) bool { return a.Username == username })
	if i < 0 {
		return false
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	return true
}

// Delete removes the account with the given ID and reports whether it was
// present.
func (s *Store) Delete(id uuid.UUID) bool {
	i := slices.IndexFunc(s.accounts, func(a *model.Account) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	return true
}

// All returns all accounts in seed order.
func (s *Store) All() []*model.Account {
	return slices.Clone(s.accounts)
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}
