package app

// Action is a user request. Fields carry raw input values; the controller
// parses and validates them.
type Action interface {
	action()
}

// Login authenticates and starts a session.
type Login struct {
	Username string
	PIN      string
}

// Transfer sends money to another account.
type Transfer struct {
	To     string
	Amount string
}

// Loan requests a loan for the logged-in account.
type Loan struct {
	Amount string
}

// Close deletes the logged-in account after re-checking its credentials.
type Close struct {
	Username string
	PIN      string
}

// Sort toggles between chronological and sorted display.
type Sort struct{}

// Logout ends the session.
type Logout struct{}

func (Login) action()    {}
func (Transfer) action() {}
func (Loan) action()     {}
func (Close) action()    {}
func (Sort) action()     {}
func (Logout) action()   {}

// User-facing notices.
const (
	NoticeWrongCredentials = "Wrong credentials. Please try again."
	NoticeLoanDeclined     = "Sorry your request was declined."
	NoticeLoanApproved     = "Congratulations your loan was approved!"
	NoticeAccountDeleted   = "Account deleted!"
	NoticeLoggedOut        = "You have been logged out!"
)
