package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoan(t *testing.T) {
	tests := []struct {
		name      string
		movements []string
		amount    string
		approved  bool
	}{
		{"deposit above ratio", []string{"200"}, "500", true},
		{"deposit exactly at ratio", []string{"120"}, "400", true},
		{"deposit below ratio", []string{"100"}, "400", false},
		{"only withdrawals", []string{"-1000"}, "10", false},
		{"no history", nil, "10", false},
		{"any single deposit qualifies", []string{"10", "-5", "3000", "20"}, "10000", true},
		{"deposits are not summed", []string{"100", "100"}, "400", false},
		{"zero amount", []string{"1000"}, "0", false},
		{"negative amount", []string{"1000"}, "-50", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newAccount("Alice Anders", 1, tt.movements...))
			a := mustLookup(svc, "aa")
			before := len(a.Movements)

			p, err := svc.RequestLoan(a, dec(tt.amount))
			if tt.approved {
				require.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, a.ID, p.AccountID)
				assert.True(t, p.Amount.Equal(dec(tt.amount)))
				assert.Equal(t, 2500*time.Millisecond, p.Delay())
			} else {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, p)
			}
			assert.Len(t, a.Movements, before, "nothing is credited at request time")
		})
	}
}

func TestSettleLoan(t *testing.T) {
	svc := newTestService(newAccount("Alice Anders", 1, "200"))
	a := mustLookup(svc, "aa")

	p, err := svc.RequestLoan(a, dec("500"))
	require.NoError(t, err)

	// A transfer in the meantime does not stop the credit.
	a.Append(dec("-50"), testNow)

	got, err := svc.SettleLoan(p)
	require.NoError(t, err)
	assert.Same(t, a, got)
	require.Len(t, a.Movements, 3)
	assert.True(t, a.Movements[2].Equal(dec("500")))
	assert.Len(t, a.MovementsDates, 3)
}

func TestSettleLoan_AfterClosure(t *testing.T) {
	svc := newTestService(newAccount("Alice Anders", 1, "200"))
	a := mustLookup(svc, "aa")

	p, err := svc.RequestLoan(a, dec("500"))
	require.NoError(t, err)
	require.NoError(t, svc.CloseAccount(a, "aa", 1))

	_, err = svc.SettleLoan(p)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, a.Movements, 1, "closed account is not credited")
}
