package handlers

import (
	"fintrack/internal/budget"
	"fintrack/internal/ledger"
	"fintrack/internal/services"

	"github.com/shopspring/decimal"
)

type FinanceService interface {
	CreateAccount(accountType ledger.AccountType) *ledger.Account
	SelectAccount(number string) bool
	CurrentAccount() (*ledger.Account, bool)
	GetAccount(number string) (*ledger.Account, bool)
	AllAccounts() []*ledger.Account
	DeleteAccount(number string) bool
	Deposit(number string, amount decimal.Decimal, description string) (bool, error)
	Withdraw(number string, amount decimal.Decimal, description string) (bool, error)
	Transfer(fromNumber, toNumber string, amount decimal.Decimal) (bool, error)
	Summary() services.FinancialSummary
	Performance() []services.AccountPerformance
	SelfCheck() []services.SelfCheckRow
}

type BudgetService interface {
	Create(category string, limit decimal.Decimal) error
	AddExpense(category string, amount decimal.Decimal) bool
	Status(category string) (budget.Status, bool)
	Analysis() budget.Analysis
}
