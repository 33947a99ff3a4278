package report

import (
	"fmt"
	"strings"

	"fintrack/internal/budget"
	"fintrack/internal/calc"
	"fintrack/internal/ledger"
	"fintrack/internal/money"
	"fintrack/internal/services"
)

const (
	separator      = "-----------------------------------"
	timestampStyle = "2006-01-02 15:04"
)

func FinancialSummary(s services.FinancialSummary) string {
	var b strings.Builder
	b.WriteString("========== FINANCIAL REPORT ==========\n")
	fmt.Fprintf(&b, "Total Balance: %s\n", money.Format(s.TotalBalance))
	fmt.Fprintf(&b, "Total Income: %s\n", money.Format(s.TotalIncome))
	fmt.Fprintf(&b, "Total Expenses: %s\n", money.Format(s.TotalExpenses))
	fmt.Fprintf(&b, "Net Cash Flow: %s\n", money.Format(s.NetCashFlow))
	fmt.Fprintf(&b, "Number of Accounts: %d\n", s.AccountCount)
	fmt.Fprintf(&b, "Number of Transactions: %d\n", s.TransactionCount)
	b.WriteString("======================================")
	return b.String()
}

func AccountPerformance(rows []services.AccountPerformance) string {
	if len(rows) == 0 {
		return "No accounts found."
	}
	var b strings.Builder
	b.WriteString("========== ACCOUNT PERFORMANCE ==========\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "Account: %s\n", row.AccountNumber)
		fmt.Fprintf(&b, "Current Balance: %s\n", money.Format(row.Balance))
		fmt.Fprintf(&b, "Total Transactions: %d\n", row.TransactionCount)
		fmt.Fprintf(&b, "Total Income: %s\n", money.Format(row.TotalIncome))
		fmt.Fprintf(&b, "Total Expenses: %s\n", money.Format(row.TotalExpenses))
		fmt.Fprintf(&b, "Net Cash Flow: %s\n", money.Format(row.NetCashFlow))
		fmt.Fprintf(&b, "Projected Annual Interest: %s\n", money.Format(row.ProjectedInterest))
		b.WriteString(separator + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func AccountDetails(account *ledger.Account) string {
	var b strings.Builder
	b.WriteString("========== ACCOUNT DETAILS ==========\n")
	fmt.Fprintf(&b, "Account Number: %s\n", account.Number())
	fmt.Fprintf(&b, "Type: %s\n", account.Type())
	fmt.Fprintf(&b, "Balance: %s\n", money.Format(account.Balance()))
	fmt.Fprintf(&b, "Estimated Annual Interest: %s\n", money.Format(account.CalculateInterest()))
	b.WriteString("=====================================")
	return b.String()
}

func AccountList(accounts []*ledger.Account) string {
	if len(accounts) == 0 {
		return "No accounts found. Create one first!"
	}
	var b strings.Builder
	b.WriteString("========== ALL ACCOUNTS ==========\n")
	for _, account := range accounts {
		fmt.Fprintf(&b, "Account: %s\n", account.Number())
		fmt.Fprintf(&b, "Type: %s\n", account.Type())
		fmt.Fprintf(&b, "Balance: %s\n", money.Format(account.Balance()))
		b.WriteString(separator + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func Transaction(tx ledger.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transaction #%s\n", tx.ID)
	fmt.Fprintf(&b, "Type: %s\n", tx.Type)
	fmt.Fprintf(&b, "Amount: %s\n", money.String(tx.Amount))
	fmt.Fprintf(&b, "Category: %s\n", tx.Category)
	fmt.Fprintf(&b, "Description: %s\n", tx.Description)
	fmt.Fprintf(&b, "Date: %s", tx.Timestamp.Format(timestampStyle))
	return b.String()
}

// TransactionHistory expects txs newest first, as RecentTransactions returns them.
func TransactionHistory(txs []ledger.Transaction) string {
	if len(txs) == 0 {
		return "No transactions found."
	}
	var b strings.Builder
	b.WriteString("========== TRANSACTION HISTORY ==========\n")
	for _, tx := range txs {
		b.WriteString(Transaction(tx) + "\n")
		b.WriteString(separator + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func BudgetStatus(s budget.Status) string {
	state := "Within Budget"
	if s.OverBudget {
		state = "OVER BUDGET!"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", s.Category)
	fmt.Fprintf(&b, "Limit: %s\n", money.Format(s.Limit))
	fmt.Fprintf(&b, "Spent: %s\n", money.Format(s.Spent))
	fmt.Fprintf(&b, "Remaining: %s\n", money.Format(s.Remaining))
	fmt.Fprintf(&b, "Utilization: %s%%\n", money.String(s.Utilization))
	fmt.Fprintf(&b, "Status: %s", state)
	return b.String()
}

// BudgetStatusReport is the formatted status of one category, or false when
// no budget exists for it.
func BudgetStatusReport(manager *budget.Manager, category string) (string, bool) {
	status, ok := manager.Status(category)
	if !ok {
		return "", false
	}
	return BudgetStatus(status), true
}

func BudgetList(statuses []budget.Status) string {
	if len(statuses) == 0 {
		return "No budgets found."
	}
	var b strings.Builder
	b.WriteString("========== ALL BUDGETS ==========\n")
	for _, status := range statuses {
		b.WriteString(BudgetStatus(status) + "\n")
		b.WriteString(separator + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func BudgetAnalysis(a budget.Analysis) string {
	if len(a.Budgets) == 0 {
		return "No budgets found."
	}
	var b strings.Builder
	b.WriteString("========== BUDGET ANALYSIS ==========\n")
	for _, status := range a.Budgets {
		state := "On Track"
		if status.OverBudget {
			state = "OVER BUDGET"
		}
		fmt.Fprintf(&b, "%s: %s\n", status.Category, state)
		fmt.Fprintf(&b, "  Limit: %s\n", money.Format(status.Limit))
		fmt.Fprintf(&b, "  Spent: %s\n", money.Format(status.Spent))
		fmt.Fprintf(&b, "  Remaining: %s\n", money.Format(status.Remaining))
		fmt.Fprintf(&b, "  Utilization: %s%%\n", money.String(status.Utilization))
	}
	b.WriteString(separator + "\n")
	b.WriteString("OVERALL BUDGET SUMMARY:\n")
	fmt.Fprintf(&b, "Total Budget Limit: %s\n", money.Format(a.TotalLimit))
	fmt.Fprintf(&b, "Total Spent: %s\n", money.Format(a.TotalSpent))
	fmt.Fprintf(&b, "Total Remaining: %s\n", money.Format(a.TotalRemaining))
	b.WriteString("=====================================")
	return b.String()
}

func Loan(s calc.LoanSummary) string {
	var b strings.Builder
	b.WriteString("========== LOAN CALCULATION RESULTS ==========\n")
	fmt.Fprintf(&b, "Principal: %s\n", money.Format(s.Principal))
	fmt.Fprintf(&b, "Annual Rate: %s\n", money.FormatRate(s.AnnualRate))
	fmt.Fprintf(&b, "Term: %d %s\n", s.Years, plural(s.Years, "year"))
	fmt.Fprintf(&b, "Monthly Payment: %s\n", money.Format(s.MonthlyPayment))
	fmt.Fprintf(&b, "Total Interest: %s\n", money.Format(s.TotalInterest))
	fmt.Fprintf(&b, "Total Payment: %s\n", money.Format(s.TotalPayment))
	b.WriteString("=============================================")
	return b.String()
}

func Investment(p calc.InvestmentProjection) string {
	var b strings.Builder
	b.WriteString("========== INVESTMENT PROJECTION ==========\n")
	fmt.Fprintf(&b, "Initial Investment: %s\n", money.Format(p.Principal))
	fmt.Fprintf(&b, "Monthly Contribution: %s\n", money.Format(p.MonthlyContribution))
	fmt.Fprintf(&b, "Annual Return: %s\n", money.FormatRate(p.AnnualRate))
	fmt.Fprintf(&b, "Time Period: %d %s\n\n", p.Years, plural(p.Years, "year"))
	fmt.Fprintf(&b, "Total Contributions: %s\n", money.Format(p.TotalContributions))
	fmt.Fprintf(&b, "Total Earnings: %s\n", money.Format(p.TotalEarnings))
	fmt.Fprintf(&b, "Future Value: %s\n", money.Format(p.FutureValue))
	b.WriteString("==========================================")
	return b.String()
}

func Compound(s calc.CompoundSummary) string {
	var b strings.Builder
	b.WriteString("========== COMPOUND INTEREST RESULTS ==========\n")
	fmt.Fprintf(&b, "Principal: %s\n", money.Format(s.Principal))
	fmt.Fprintf(&b, "Rate: %s per year\n", money.FormatRate(s.AnnualRate))
	fmt.Fprintf(&b, "Time: %d %s\n", s.Years, plural(s.Years, "year"))
	fmt.Fprintf(&b, "Compounding: %d times per year\n\n", s.CompoundFrequency)
	fmt.Fprintf(&b, "Interest Earned: %s\n", money.Format(s.InterestEarned))
	fmt.Fprintf(&b, "Final Amount: %s\n", money.Format(s.FinalAmount))
	b.WriteString("==============================================")
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
