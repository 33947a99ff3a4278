package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"fintrack/internal/budget"
	"fintrack/internal/money"
	"fintrack/internal/validator"

	"github.com/go-chi/chi/v5"
)

type createBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

type expenseRequest struct {
	Amount string `json:"amount"`
}

func budgetPayload(status budget.Status) map[string]any {
	return map[string]any{
		"category":    status.Category,
		"limit":       money.String(status.Limit),
		"spent":       money.String(status.Spent),
		"remaining":   money.String(status.Remaining),
		"utilization": money.String(status.Utilization),
		"over_budget": status.OverBudget,
	}
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	category := strings.TrimSpace(req.Category)
	if err := validator.ValidateCategory(category); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := money.Parse(req.Limit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_limit")
		return
	}
	if err := h.budgets.Create(category, limit); err != nil {
		if errors.Is(err, budget.ErrInvalidLimit) {
			respondError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to create budget")
		return
	}
	log := requestLogger(r)
	log.Info().Str("category", category).Str("limit", money.String(limit)).Msg("budget set")
	status, _ := h.budgets.Status(category)
	respondJSON(w, http.StatusCreated, budgetPayload(status))
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	analysis := h.budgets.Analysis()
	response := make([]map[string]any, 0, len(analysis.Budgets))
	for _, status := range analysis.Budgets {
		response = append(response, budgetPayload(status))
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	status, ok := h.budgets.Status(categoryParam(r))
	if !ok {
		respondError(w, http.StatusNotFound, "budget not found")
		return
	}
	respondJSON(w, http.StatusOK, budgetPayload(status))
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	if _, ok := h.budgets.Status(category); !ok {
		respondError(w, http.StatusNotFound, "budget not found")
		return
	}
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	log := requestLogger(r).With().Str("category", category).Str("amount", money.String(amount)).Logger()
	if !h.budgets.AddExpense(category, amount) {
		log.Info().Msg("expense refused")
		respondError(w, http.StatusUnprocessableEntity, "budget_exceeded")
		return
	}
	log.Info().Msg("expense recorded")
	status, _ := h.budgets.Status(category)
	respondJSON(w, http.StatusOK, budgetPayload(status))
}

func categoryParam(r *http.Request) string {
	raw := chi.URLParam(r, "category")
	if category, err := url.PathUnescape(raw); err == nil {
		return category
	}
	return raw
}
