package accounts

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bankist-dev/bankist/internal/model"
)

// SeedFile is the YAML shape of an accounts seed file.
type SeedFile struct {
	Accounts []SeedAccount `yaml:"accounts"`
}

// SeedAccount describes one account in a seed file.
type SeedAccount struct {
	Owner        string         `yaml:"owner"`
	PIN          int            `yaml:"pin"`
	InterestRate string         `yaml:"interest_rate"`
	Currency     string         `yaml:"currency"`
	Locale       string         `yaml:"locale"`
	Movements    []SeedMovement `yaml:"movements"`
}

// SeedMovement is a single dated amount.
type SeedMovement struct {
	Amount string `yaml:"amount"`
	Date   string `yaml:"date"` // RFC 3339
}

// LoadSeed reads a seed file from disk.
func LoadSeed(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	accts, err := ReadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", path, err)
	}
	return accts, nil
}

// SaveSeed writes accounts to a seed file on disk.
func SaveSeed(path string, accts []model.Account) error {
	sf := SeedFile{Accounts: make([]SeedAccount, 0, len(accts))}
	for _, acct := range accts {
		sf.Accounts = append(sf.Accounts, MarshalSeedAccount(acct))
	}
	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling seed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}
	return nil
}

// ReadSeed decodes seed accounts from r.
func ReadSeed(r io.Reader) ([]model.Account, error) {
	var sf SeedFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	accts := make([]model.Account, 0, len(sf.Accounts))
	for i, sa := range sf.Accounts {
		acct, err := UnmarshalSeedAccount(sa)
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i+1, sa.Owner, err)
		}
		accts = append(accts, acct)
	}
	return accts, nil
}

// UnmarshalSeedAccount converts a SeedAccount to an Account.
func UnmarshalSeedAccount(sa SeedAccount) (model.Account, error) {
	if sa.Owner == "" {
		return model.Account{}, fmt.Errorf("owner is required")
	}

	rate := decimal.Zero
	if sa.InterestRate != "" {
		var err error
		rate, err = decimal.NewFromString(sa.InterestRate)
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing interest_rate %q: %w", sa.InterestRate, err)
		}
	}

	acct := model.Account{
		Owner:        sa.Owner,
		PIN:          sa.PIN,
		InterestRate: rate,
		Currency:     sa.Currency,
		Locale:       sa.Locale,
	}
	for j, sm := range sa.Movements {
		amount, err := decimal.NewFromString(sm.Amount)
		if err != nil {
			return model.Account{}, fmt.Errorf("movement %d: parsing amount %q: %w", j+1, sm.Amount, err)
		}
		at, err := time.Parse(time.RFC3339, sm.Date)
		if err != nil {
			return model.Account{}, fmt.Errorf("movement %d: parsing date %q: %w", j+1, sm.Date, err)
		}
		acct.Append(amount, at)
	}
	return acct, nil
}

// MarshalSeedAccount converts an Account to its seed form.
func MarshalSeedAccount(acct model.Account) SeedAccount {
	sa := SeedAccount{
		Owner:        acct.Owner,
		PIN:          acct.PIN,
		InterestRate: acct.InterestRate.String(),
		Currency:     acct.Currency,
		Locale:       acct.Locale,
	}
	for _, m := range acct.History() {
		sa.Movements = append(sa.Movements, SeedMovement{
			Amount: m.Amount.String(),
			Date:   m.Date.UTC().Format(time.RFC3339Nano),
		})
	}
	return sa
}
