package app

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/view"
)

type recorder struct {
	mu         sync.Mutex
	models     []view.Model
	notices    []string
	countdowns []string
}

func (r *recorder) Render(m view.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, m)
}

func (r *recorder) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, msg)
}

func (r *recorder) Countdown(remaining string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countdowns = append(r.countdowns, remaining)
}

func (r *recorder) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

func (r *recorder) Last() view.Model {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.models) == 0 {
		return view.Model{}
	}
	return r.models[len(r.models)-1]
}

func (r *recorder) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.models)
}

func newTestController(t *testing.T, cfg *config.Config) (*Controller, *recorder, *accounts.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := accounts.NewStore(accounts.DefaultSeed())
	rec := &recorder{}
	c := New(bank.NewService(store, cfg.Loan, log), cfg, rec, log)
	t.Cleanup(func() {
		c.stop.Do(func() { close(c.done) })
		c.stopCountdown()
	})
	return c, rec, store
}

func lookup(t *testing.T, store *accounts.Store, username string) int {
	t.Helper()
	acct, ok := store.Lookup(username)
	require.True(t, ok, "no account %s", username)
	return len(acct.Movements)
}

func TestLogin(t *testing.T) {
	c, rec, _ := newTestController(t, config.Default())

	c.Handle(Login{Username: "js", PIN: "1111"})

	assert.Equal(t, session.LoggedIn, c.Session().State())
	m := rec.Last()
	assert.True(t, m.LoggedIn)
	assert.Equal(t, "Welcome back, Jonas", m.Welcome)
	assert.Equal(t, "05:00", m.Timer)
	assert.Len(t, m.Rows, 8)
	assert.Empty(t, rec.Notices())
}

func TestLogin_WrongCredentials(t *testing.T) {
	for _, pin := range []string{"9999", "", "abcd"} {
		c, rec, _ := newTestController(t, config.Default())
		c.Handle(Login{Username: "js", PIN: pin})

		assert.Equal(t, session.LoggedOut, c.Session().State(), "pin %q", pin)
		assert.Equal(t, []string{NoticeWrongCredentials}, rec.Notices(), "pin %q", pin)
		assert.Zero(t, rec.Renders())
	}
}

func TestIgnoredWhileLoggedOut(t *testing.T) {
	c, rec, store := newTestController(t, config.Default())

	c.Handle(Transfer{To: "nh", Amount: "100"})
	c.Handle(Loan{Amount: "100"})
	c.Handle(Close{Username: "js", PIN: "1111"})
	c.Handle(Sort{})
	c.Handle(Logout{})

	assert.Zero(t, rec.Renders())
	assert.Empty(t, rec.Notices())
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 8, lookup(t, store, "nh"))
}

func TestTransfer(t *testing.T) {
	c, rec, store := newTestController(t, config.Default())
	c.Handle(Login{Username: "js", PIN: "1111"})

	c.Handle(Transfer{To: "nh", Amount: "100"})
	assert.Equal(t, 2, rec.Renders())
	assert.Equal(t, 9, lookup(t, store, "js"))
	assert.Equal(t, 9, lookup(t, store, "nh"))

	// Declined transfers change nothing and stay silent.
	for _, tr := range []Transfer{
		{To: "nh", Amount: "1000000"},
		{To: "nh", Amount: "-5"},
		{To: "nh", Amount: "ten"},
		{To: "js", Amount: "10"},
		{To: "zz", Amount: "10"},
	} {
		c.Handle(tr)
	}
	assert.Equal(t, 2, rec.Renders())
	assert.Empty(t, rec.Notices())
	assert.Equal(t, 9, lookup(t, store, "js"))
}

func TestLoan_Declined(t *testing.T) {
	c, rec, store := newTestController(t, config.Default())
	c.Handle(Login{Username: "nh", PIN: "2222"})

	c.Handle(Loan{Amount: "30000"})
	c.Handle(Loan{Amount: "0"})
	c.Handle(Loan{Amount: "lots"})

	assert.Equal(t, []string{NoticeLoanDeclined, NoticeLoanDeclined, NoticeLoanDeclined}, rec.Notices())
	assert.Equal(t, 8, lookup(t, store, "nh"))
}

func TestClose(t *testing.T) {
	c, rec, store := newTestController(t, config.Default())
	c.Handle(Login{Username: "js", PIN: "1111"})

	c.Handle(Close{Username: "js", PIN: "2222"})
	c.Handle(Close{Username: "nh", PIN: "2222"})
	assert.Equal(t, 2, store.Len(), "wrong credentials keep the account")
	assert.Empty(t, rec.Notices())

	c.Handle(Close{Username: "js", PIN: "1111"})
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []string{NoticeAccountDeleted}, rec.Notices())
	assert.Equal(t, session.LoggedOut, c.Session().State())
	assert.Equal(t, view.LoggedOut(), rec.Last())

	_, ok := store.Lookup("js")
	assert.False(t, ok)
}

func TestSortAndLogout(t *testing.T) {
	c, rec, _ := newTestController(t, config.Default())
	c.Handle(Login{Username: "js", PIN: "1111"})

	c.Handle(Sort{})
	assert.True(t, rec.Last().Sorted)
	assert.Equal(t, "-642.21", lowest(c))

	c.Handle(Sort{})
	assert.False(t, rec.Last().Sorted)

	c.Handle(Logout{})
	assert.Equal(t, session.LoggedOut, c.Session().State())
	assert.False(t, rec.Last().LoggedIn)
	assert.Nil(t, c.ticker)
}

func lowest(c *Controller) string {
	lo := c.Session().Account().Movements[0]
	for _, m := range c.Session().Account().Movements {
		if m.LessThan(lo) {
			lo = m
		}
	}
	return lo.String()
}

func runController(t *testing.T, c *Controller) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
	return cancel
}

func TestRun_SessionExpires(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Timeout = 3 * time.Second
	c, rec, _ := newTestController(t, cfg)
	c.tick = 5 * time.Millisecond
	runController(t, c)

	require.NoError(t, c.Dispatch(context.Background(), Login{Username: "js", PIN: "1111"}))

	require.Eventually(t, func() bool {
		notices := rec.Notices()
		return len(notices) == 1 && notices[0] == NoticeLoggedOut
	}, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"00:02", "00:01"}, rec.countdowns)
	assert.False(t, rec.models[len(rec.models)-1].LoggedIn)
}

func TestRun_LoanSettles(t *testing.T) {
	cfg := config.Default()
	cfg.Loan.Delay = 10 * time.Millisecond
	c, rec, store := newTestController(t, cfg)
	runController(t, c)

	ctx := context.Background()
	require.NoError(t, c.Dispatch(ctx, Login{Username: "js", PIN: "1111"}))
	require.NoError(t, c.Dispatch(ctx, Loan{Amount: "5000"}))

	require.Eventually(t, func() bool {
		notices := rec.Notices()
		return len(notices) == 1 && notices[0] == NoticeLoanApproved
	}, time.Second, 5*time.Millisecond)

	// One render for login, one for the credited loan.
	require.Eventually(t, func() bool { return rec.Renders() == 2 }, time.Second, 5*time.Millisecond)
	assert.Len(t, rec.Last().Rows, 9)

	acct, ok := store.Lookup("js")
	require.True(t, ok)
	assert.Equal(t, "5000", acct.Movements[8].String())
}

func TestRun_LoanCreditedAfterLogout(t *testing.T) {
	cfg := config.Default()
	cfg.Loan.Delay = 100 * time.Millisecond
	c, rec, store := newTestController(t, cfg)
	runController(t, c)

	ctx := context.Background()
	require.NoError(t, c.Dispatch(ctx, Login{Username: "js", PIN: "1111"}))
	require.NoError(t, c.Dispatch(ctx, Loan{Amount: "100"}))
	require.NoError(t, c.Dispatch(ctx, Logout{}))
	require.NoError(t, c.Dispatch(ctx, Login{Username: "nh", PIN: "2222"}))

	require.Eventually(t, func() bool {
		return len(rec.Notices()) == 1
	}, time.Second, 5*time.Millisecond)

	// nh's view is not redrawn for js's loan.
	assert.Equal(t, 3, rec.Renders())
	assert.Equal(t, "Welcome back, Nick", rec.Last().Welcome)
	assert.Equal(t, 9, lookup(t, store, "js"))
}

func TestDispatch_Stopped(t *testing.T) {
	c, _, _ := newTestController(t, config.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, c.Run(ctx))

	assert.Error(t, c.Dispatch(context.Background(), Logout{}))
}
