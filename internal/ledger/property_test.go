package ledger

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// Positive steps deposit, negative steps withdraw, zero steps must be rejected.
func applySteps(account *Account, steps []int64) bool {
	for _, step := range steps {
		amount := decimal.New(step, -2)
		switch {
		case step > 0:
			if err := account.Deposit(amount, "p"); err != nil {
				return false
			}
		case step < 0:
			if _, err := account.Withdraw(amount.Neg(), "p"); err != nil {
				return false
			}
		default:
			if err := account.Deposit(amount, "p"); err == nil {
				return false
			}
		}
	}
	return true
}

func TestBalanceEqualsNetHistory(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("balance equals income minus expenses", prop.ForAll(
		func(steps []int64) bool {
			account := NewAccount("ACC1000", CheckingAccount())
			if !applySteps(account, steps) {
				return false
			}
			history := Transactions(account.TransactionHistory())
			return account.Balance().Equal(history.NetCashFlow()) && !account.Balance().IsNegative()
		},
		gen.SliceOf(gen.Int64Range(-50000, 50000)),
	))

	properties.Property("history snapshots are stable without mutation", prop.ForAll(
		func(steps []int64) bool {
			account := NewAccount("ACC1000", SavingsAccount())
			applySteps(account, steps)
			first := account.TransactionHistory()
			second := account.TransactionHistory()
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i].ID != second[i].ID || !first[i].Amount.Equal(second[i].Amount) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(-10000, 10000)),
	))

	properties.TestingRun(t)
}

func TestTransferAllOrNothing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("transfer moves exactly amount or nothing", prop.ForAll(
		func(seedA, seedB, cents int64) bool {
			a := NewAccount("ACC1000", CheckingAccount())
			b := NewAccount("ACC1001", CheckingAccount())
			if seedA > 0 {
				_ = a.Deposit(decimal.New(seedA, -2), "seed")
			}
			if seedB > 0 {
				_ = b.Deposit(decimal.New(seedB, -2), "seed")
			}
			beforeA, beforeB := a.Balance(), b.Balance()
			amount := decimal.New(cents, -2)

			ok, err := TransferBetween(a, b, amount, "out", "in")
			if err != nil {
				return false
			}
			deltaA := a.Balance().Sub(beforeA)
			deltaB := b.Balance().Sub(beforeB)
			if ok {
				return deltaA.Equal(amount.Neg()) && deltaB.Equal(amount)
			}
			return deltaA.IsZero() && deltaB.IsZero() && beforeA.LessThan(amount)
		},
		gen.Int64Range(0, 100000),
		gen.Int64Range(0, 100000),
		gen.Int64Range(1, 100000),
	))

	properties.TestingRun(t)
}
