// Package session tracks who is logged in, the inactivity countdown and the
// display-only sort toggle.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultTimeout is the inactivity period after which a session ends.
const DefaultTimeout = 300 * time.Second

// State is the session's login state.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case LoggedIn:
		return "logged-in"
	default:
		return "unknown"
	}
}

// Session holds the authenticated account and its countdown. A zero
// Session is logged out with DefaultTimeout.
type Session struct {
	id        uuid.UUID
	account   *model.Account
	timeout   int // seconds
	remaining int // seconds
	sorted    bool
}

// New returns a logged-out session whose countdown starts at timeout,
// truncated to whole seconds.
func New(timeout time.Duration) *Session {
	return &Session{timeout: int(timeout / time.Second)}
}

// Login starts a session for acct and resets the countdown.
func (s *Session) Login(acct *model.Account) {
	s.id = uuid.New()
	s.account = acct
	s.sorted = false
	s.remaining = s.timeoutSeconds()
}

// Logout ends the session.
func (s *Session) Logout() {
	s.id = uuid.Nil
	s.account = nil
	s.remaining = 0
	s.sorted = false
}

// Touch records activity and resets the countdown. It has no effect when
// logged out.
func (s *Session) Touch() {
	if s.account == nil {
		return
	}
	s.remaining = s.timeoutSeconds()
}

// Tick advances the countdown by one second. It reports whether this tick
// expired the session, in which case the session is now logged out.
func (s *Session) Tick() bool {
	if s.account == nil {
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		return false
	}
	s.Logout()
	return true
}

// ToggleSort flips the display order and counts as activity. It returns
// the new value.
func (s *Session) ToggleSort() bool {
	if s.account == nil {
		return s.sorted
	}
	s.sorted = !s.sorted
	s.Touch()
	return s.sorted
}

// State reports whether someone is logged in.
func (s *Session) State() State {
	if s.account == nil {
		return LoggedOut
	}
	return LoggedIn
}

// ID identifies the current login; uuid.Nil when logged out.
func (s *Session) ID() uuid.UUID { return s.id }

// Account returns the logged-in account, or nil.
func (s *Session) Account() *model.Account { return s.account }

// Sorted reports whether movements are displayed sorted by amount.
func (s *Session) Sorted() bool { return s.sorted }

// Remaining returns the seconds left before forced logout.
func (s *Session) Remaining() int { return s.remaining }

// Countdown formats the remaining time as MM:SS.
func (s *Session) Countdown() string {
	return fmt.Sprintf("%02d:%02d", s.remaining/60, s.remaining%60)
}

func (s *Session) timeoutSeconds() int {
	if s.timeout <= 0 {
		return int(DefaultTimeout / time.Second)
	}
	return s.timeout
}
