package handlers

import (
	"net/http"

	"fintrack/internal/money"
)

func (h *Handler) SummaryReport(w http.ResponseWriter, r *http.Request) {
	summary := h.finance.Summary()
	respondJSON(w, http.StatusOK, map[string]any{
		"total_balance":     money.String(summary.TotalBalance),
		"total_income":      money.String(summary.TotalIncome),
		"total_expenses":    money.String(summary.TotalExpenses),
		"net_cash_flow":     money.String(summary.NetCashFlow),
		"account_count":     summary.AccountCount,
		"transaction_count": summary.TransactionCount,
	})
}

func (h *Handler) PerformanceReport(w http.ResponseWriter, r *http.Request) {
	rows := h.finance.Performance()
	response := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		response = append(response, map[string]any{
			"account_number":     row.AccountNumber,
			"account_type":       row.AccountType,
			"balance":            money.String(row.Balance),
			"transaction_count":  row.TransactionCount,
			"total_income":       money.String(row.TotalIncome),
			"total_expenses":     money.String(row.TotalExpenses),
			"net_cash_flow":      money.String(row.NetCashFlow),
			"projected_interest": money.String(row.ProjectedInterest),
		})
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) BudgetReport(w http.ResponseWriter, r *http.Request) {
	analysis := h.budgets.Analysis()
	budgets := make([]map[string]any, 0, len(analysis.Budgets))
	for _, status := range analysis.Budgets {
		budgets = append(budgets, budgetPayload(status))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"budgets":         budgets,
		"total_limit":     money.String(analysis.TotalLimit),
		"total_spent":     money.String(analysis.TotalSpent),
		"total_remaining": money.String(analysis.TotalRemaining),
	})
}
