package budget

import (
	"errors"
	"sync"

	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

var ErrInvalidLimit = errors.New("budget limit must be positive")

// Budget caps spending for one category. AddExpense is the only mutation and
// never lets spent pass limit.
type Budget struct {
	mu       sync.Mutex
	category string
	limit    decimal.Decimal
	spent    decimal.Decimal
}

func New(category string, limit decimal.Decimal) (*Budget, error) {
	if !limit.IsPositive() {
		return nil, ErrInvalidLimit
	}
	return &Budget{category: category, limit: limit, spent: decimal.Zero}, nil
}

func (b *Budget) Category() string {
	return b.category
}

func (b *Budget) Limit() decimal.Decimal {
	return b.limit
}

func (b *Budget) Spent() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.spent
}

// AddExpense accepts amount only if the total stays within the limit.
// Non-positive amounts are refused.
func (b *Budget) AddExpense(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.spent.Add(amount)
	if next.GreaterThan(b.limit) {
		return false
	}
	b.spent = next
	return true
}

func (b *Budget) Remaining() decimal.Decimal {
	return b.limit.Sub(b.Spent())
}

// Utilization is spent/limit at four decimals, times 100.
func (b *Budget) Utilization() decimal.Decimal {
	return money.Percent(b.Spent(), b.limit)
}

// IsOverBudget cannot be true while AddExpense is the only way in; it stays
// for callers that report on it.
func (b *Budget) IsOverBudget() bool {
	return b.Spent().GreaterThan(b.limit)
}

type Status struct {
	Category    string          `json:"category"`
	Limit       decimal.Decimal `json:"limit"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization decimal.Decimal `json:"utilization"`
	OverBudget  bool            `json:"over_budget"`
}

// Status takes a consistent snapshot under one lock.
func (b *Budget) Status() Status {
	b.mu.Lock()
	spent := b.spent
	b.mu.Unlock()
	return Status{
		Category:    b.category,
		Limit:       b.limit,
		Spent:       spent,
		Remaining:   b.limit.Sub(spent),
		Utilization: money.Percent(spent, b.limit),
		OverBudget:  spent.GreaterThan(b.limit),
	}
}
