package ledger

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidRate   = errors.New("interest rate must not be negative")
)

const (
	CategoryDeposit    = "Deposit"
	CategoryWithdrawal = "Withdrawal"
)

type TransactionType int

const (
	Income TransactionType = iota + 1
	Expense
	Transfer
)

func (t TransactionType) String() string {
	switch t {
	case Income:
		return "INCOME"
	case Expense:
		return "EXPENSE"
	case Transfer:
		return "TRANSFER"
	default:
		return "UNKNOWN"
	}
}

func (t TransactionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Transaction is an immutable history record. Accounts hand out copies only.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

type AccountKind int

const (
	Savings AccountKind = iota + 1
	Checking
	Investment
)

var (
	savingsRate  = decimal.RequireFromString("0.03")
	checkingRate = decimal.RequireFromString("0.01")
)

// AccountType is a closed set: Savings and Checking carry fixed rates,
// Investment carries the rate it was created with.
type AccountType struct {
	kind AccountKind
	rate decimal.Decimal
}

func SavingsAccount() AccountType {
	return AccountType{kind: Savings}
}

func CheckingAccount() AccountType {
	return AccountType{kind: Checking}
}

func InvestmentAccount(rate decimal.Decimal) (AccountType, error) {
	if rate.IsNegative() {
		return AccountType{}, ErrInvalidRate
	}
	return AccountType{kind: Investment, rate: rate}, nil
}

func (t AccountType) Kind() AccountKind {
	return t.kind
}

func (t AccountType) InterestRate() decimal.Decimal {
	switch t.kind {
	case Savings:
		return savingsRate
	case Checking:
		return checkingRate
	case Investment:
		return t.rate
	default:
		return decimal.Zero
	}
}

func (t AccountType) Name() string {
	switch t.kind {
	case Savings:
		return "Savings"
	case Checking:
		return "Checking"
	case Investment:
		return "Investment"
	default:
		return "Unknown"
	}
}

func (t AccountType) String() string {
	if t.kind == Investment {
		return fmt.Sprintf("Investment(%s)", money.FormatRate(t.rate))
	}
	return t.Name()
}
