// Package app runs the bank on a single event loop. User actions, the
// one-second logout countdown and delayed loan settlements are all handled
// by the goroutine running Controller.Run, one at a time, so accounts and
// the session need no locking.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/view"
)

// Host draws the app and shows notices. Its methods are called from the
// loop goroutine.
type Host interface {
	Render(m view.Model)
	Notify(msg string)
	Countdown(remaining string)
}

// Controller owns the session and routes actions to the bank.
type Controller struct {
	bank *bank.Service
	sess *session.Session
	host Host
	log  *logrus.Logger
	now  func() time.Time
	tick time.Duration

	actions chan Action
	settled chan *bank.PendingLoan
	done    chan struct{}
	stop    sync.Once
	ticker  *time.Ticker
}

// New creates a Controller.
func New(svc *bank.Service, cfg *config.Config, host Host, log *logrus.Logger) *Controller {
	return &Controller{
		bank:    svc,
		sess:    session.New(cfg.Session.Timeout),
		host:    host,
		log:     log,
		now:     time.Now,
		tick:    time.Second,
		actions: make(chan Action),
		settled: make(chan *bank.PendingLoan),
		done:    make(chan struct{}),
	}
}

// Session returns the controller's session. Only read it from the loop
// goroutine or after Run has returned.
func (c *Controller) Session() *session.Session {
	return c.sess
}

// Dispatch queues an action for the loop.
func (c *Controller) Dispatch(ctx context.Context, a Action) error {
	select {
	case c.actions <- a:
		return nil
	case <-c.done:
		return errors.New("controller stopped")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes actions, countdown ticks and loan settlements until ctx is
// cancelled.
func (c *Controller) Run(ctx context.Context) error {
	defer c.stop.Do(func() { close(c.done) })
	defer c.stopCountdown()

	for {
		var tickC <-chan time.Time
		if c.ticker != nil {
			tickC = c.ticker.C
		}

		select {
		case <-ctx.Done():
			return nil
		case a := <-c.actions:
			c.Handle(a)
		case <-tickC:
			c.onTick()
		case p := <-c.settled:
			c.onSettle(p)
		}
	}
}

// Handle applies one action. Run calls it for dispatched actions; calling
// it directly is only safe while Run is not running.
func (c *Controller) Handle(a Action) {
	switch a := a.(type) {
	case Login:
		c.onLogin(a)
	case Transfer:
		c.onTransfer(a)
	case Loan:
		c.onLoan(a)
	case Close:
		c.onClose(a)
	case Sort:
		c.onSort()
	case Logout:
		c.onLogout()
	default:
		c.log.WithField("action", a).Warn("unknown action")
	}
}

func (c *Controller) onLogin(a Login) {
	acct, err := c.bank.Authenticate(a.Username, a.PIN)
	if err != nil {
		c.log.WithField("username", a.Username).WithError(err).Info("login failed")
		c.host.Notify(NoticeWrongCredentials)
		return
	}
	c.sess.Login(acct)
	c.log.WithFields(logrus.Fields{"username": acct.Username, "session": c.sess.ID()}).Info("logged in")
	c.activity()
}

func (c *Controller) onTransfer(a Transfer) {
	from := c.sess.Account()
	if from == nil {
		c.log.Debug("transfer ignored: not logged in")
		return
	}
	amount, err := bank.ParseAmount(a.Amount)
	if err == nil {
		err = c.bank.TransferTo(from, a.To, amount)
	}
	if err != nil {
		c.log.WithField("to", a.To).WithError(err).Info("transfer declined")
		return
	}
	c.activity()
}

func (c *Controller) onLoan(a Loan) {
	acct := c.sess.Account()
	if acct == nil {
		c.log.Debug("loan ignored: not logged in")
		return
	}
	amount, err := bank.ParseAmount(a.Amount)
	if err != nil {
		c.host.Notify(NoticeLoanDeclined)
		return
	}
	p, err := c.bank.RequestLoan(acct, amount)
	if err != nil {
		c.host.Notify(NoticeLoanDeclined)
		return
	}
	// Approved loans always settle; the timer is never cancelled.
	time.AfterFunc(p.Delay(), func() {
		select {
		case c.settled <- p:
		case <-c.done:
		}
	})
}

func (c *Controller) onSettle(p *bank.PendingLoan) {
	acct, err := c.bank.SettleLoan(p)
	if err != nil {
		return
	}
	c.host.Notify(NoticeLoanApproved)
	if c.sess.Account() == acct {
		c.activity()
	}
}

func (c *Controller) onClose(a Close) {
	acct := c.sess.Account()
	if acct == nil {
		return
	}
	pin, err := accounts.ParsePIN(a.PIN)
	if err == nil {
		err = c.bank.CloseAccount(acct, a.Username, pin)
	}
	if err != nil {
		c.log.WithField("username", a.Username).WithError(err).Info("close declined")
		return
	}
	c.endSession()
	c.host.Notify(NoticeAccountDeleted)
}

func (c *Controller) onSort() {
	if c.sess.State() != session.LoggedIn {
		return
	}
	c.sess.ToggleSort()
	c.activity()
}

func (c *Controller) onLogout() {
	if c.sess.State() != session.LoggedIn {
		return
	}
	c.log.WithField("session", c.sess.ID()).Info("logged out")
	c.endSession()
}

func (c *Controller) onTick() {
	if c.sess.Tick() {
		c.log.Info("session expired")
		c.endSession()
		c.host.Notify(NoticeLoggedOut)
		return
	}
	c.host.Countdown(c.sess.Countdown())
}

// activity resets the countdown and redraws the current account.
func (c *Controller) activity() {
	c.sess.Touch()
	c.restartCountdown()
	c.host.Render(view.Build(c.sess.Account(), c.sess.Sorted(), c.sess.Countdown(), c.now()))
}

func (c *Controller) endSession() {
	c.sess.Logout()
	c.stopCountdown()
	c.host.Render(view.LoggedOut())
}

func (c *Controller) restartCountdown() {
	c.stopCountdown()
	c.ticker = time.NewTicker(c.tick)
}

func (c *Controller) stopCountdown() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}
