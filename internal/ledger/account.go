package ledger

import (
	"sync"
	"time"

	"fintrack/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account owns a balance and its append-only history. The balance only moves
// through deposit and withdraw, each of which appends exactly one transaction.
type Account struct {
	mu          sync.Mutex
	number      string
	accountType AccountType
	balance     decimal.Decimal
	history     []Transaction
	now         func() time.Time
}

func NewAccount(number string, accountType AccountType) *Account {
	return &Account{
		number:      number,
		accountType: accountType,
		balance:     decimal.Zero,
		now:         time.Now,
	}
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Type() AccountType {
	return a.accountType
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credit(amount, description)
	return nil
}

// Withdraw reports false without touching the account when funds are short.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debit(amount, description), nil
}

// CalculateInterest projects one year of interest on the current balance.
// Nothing is posted to the account.
func (a *Account) CalculateInterest() decimal.Decimal {
	return money.Round(a.Balance().Mul(a.accountType.InterestRate()))
}

func (a *Account) TransactionHistory() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	history := make([]Transaction, len(a.history))
	copy(history, a.history)
	return history
}

// RecentTransactions returns up to n transactions, newest first.
func (a *Account) RecentTransactions(n int) []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n > len(a.history) {
		n = len(a.history)
	}
	if n < 0 {
		n = 0
	}
	recent := make([]Transaction, 0, n)
	for i := len(a.history) - 1; i >= len(a.history)-n; i-- {
		recent = append(recent, a.history[i])
	}
	return recent
}

func (a *Account) TransactionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.history)
}

// Reconcile reads the cached balance and the net of the history under one lock.
// The two are equal unless the ledger has been corrupted.
func (a *Account) Reconcile() (balance, net decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, Transactions(a.history).NetCashFlow()
}

// credit and debit expect a.mu to be held and amount to be positive.
func (a *Account) credit(amount decimal.Decimal, description string) {
	a.balance = a.balance.Add(amount)
	a.history = append(a.history, a.newTransaction(Income, amount, CategoryDeposit, description))
}

func (a *Account) debit(amount decimal.Decimal, description string) bool {
	if a.balance.LessThan(amount) {
		return false
	}
	a.balance = a.balance.Sub(amount)
	a.history = append(a.history, a.newTransaction(Expense, amount, CategoryWithdrawal, description))
	return true
}

func (a *Account) newTransaction(txType TransactionType, amount decimal.Decimal, category, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Timestamp:   a.now(),
	}
}
