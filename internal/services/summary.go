package services

import (
	"fintrack/internal/ledger"
	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

type FinancialSummary struct {
	TotalBalance     decimal.Decimal `json:"total_balance"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetCashFlow      decimal.Decimal `json:"net_cash_flow"`
	AccountCount     int             `json:"account_count"`
	TransactionCount int             `json:"transaction_count"`
}

type AccountPerformance struct {
	AccountNumber     string          `json:"account_number"`
	AccountType       string          `json:"account_type"`
	Balance           decimal.Decimal `json:"balance"`
	TransactionCount  int             `json:"transaction_count"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	NetCashFlow       decimal.Decimal `json:"net_cash_flow"`
	ProjectedInterest decimal.Decimal `json:"projected_interest"`
}

type SelfCheckRow struct {
	AccountNumber  string          `json:"account_number"`
	AccountBalance decimal.Decimal `json:"account_balance"`
	LedgerSum      decimal.Decimal `json:"ledger_sum"`
	Difference     decimal.Decimal `json:"difference"`
}

// Summary aggregates balances and the union of all histories.
func (m *FinanceManager) Summary() FinancialSummary {
	accounts := m.AllAccounts()
	var all ledger.Transactions
	balances := make([]decimal.Decimal, 0, len(accounts))
	for _, account := range accounts {
		balances = append(balances, account.Balance())
		all = append(all, account.TransactionHistory()...)
	}
	return FinancialSummary{
		TotalBalance:     money.Sum(balances...),
		TotalIncome:      all.TotalIncome(),
		TotalExpenses:    all.TotalExpenses(),
		NetCashFlow:      all.NetCashFlow(),
		AccountCount:     len(accounts),
		TransactionCount: len(all),
	}
}

func (m *FinanceManager) Performance() []AccountPerformance {
	accounts := m.AllAccounts()
	rows := make([]AccountPerformance, 0, len(accounts))
	for _, account := range accounts {
		history := ledger.Transactions(account.TransactionHistory())
		rows = append(rows, AccountPerformance{
			AccountNumber:     account.Number(),
			AccountType:       account.Type().String(),
			Balance:           account.Balance(),
			TransactionCount:  len(history),
			TotalIncome:       history.TotalIncome(),
			TotalExpenses:     history.TotalExpenses(),
			NetCashFlow:       history.NetCashFlow(),
			ProjectedInterest: account.CalculateInterest(),
		})
	}
	return rows
}

// SelfCheck compares every cached balance with the net of its history.
func (m *FinanceManager) SelfCheck() []SelfCheckRow {
	accounts := m.AllAccounts()
	rows := make([]SelfCheckRow, 0, len(accounts))
	for _, account := range accounts {
		balance, net := account.Reconcile()
		rows = append(rows, SelfCheckRow{
			AccountNumber:  account.Number(),
			AccountBalance: balance,
			LedgerSum:      net,
			Difference:     balance.Sub(net),
		})
	}
	return rows
}
