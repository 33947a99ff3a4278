package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fintrack/internal/ledger"
	"fintrack/internal/money"
	"fintrack/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type createAccountRequest struct {
	Type string `json:"type"`
	Rate string `json:"rate"`
}

type movementRequest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func accountPayload(account *ledger.Account) map[string]any {
	return map[string]any{
		"account_number":     account.Number(),
		"type":               account.Type().Name(),
		"interest_rate":      account.Type().InterestRate().String(),
		"balance":            money.String(account.Balance()),
		"projected_interest": money.String(account.CalculateInterest()),
		"transaction_count":  account.TransactionCount(),
	}
}

func transactionPayload(tx ledger.Transaction) map[string]any {
	return map[string]any{
		"id":          tx.ID,
		"type":        tx.Type.String(),
		"amount":      money.String(tx.Amount),
		"category":    tx.Category,
		"description": tx.Description,
		"timestamp":   tx.Timestamp,
	}
}

func parseAccountType(req createAccountRequest) (ledger.AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case "savings":
		return ledger.SavingsAccount(), nil
	case "checking":
		return ledger.CheckingAccount(), nil
	case "investment":
		rate, err := money.Parse(req.Rate)
		if err != nil {
			return ledger.AccountType{}, ledger.ErrInvalidRate
		}
		return ledger.InvestmentAccount(rate)
	default:
		return ledger.AccountType{}, errors.New("type must be savings, checking or investment")
	}
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	accountType, err := parseAccountType(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	account := h.finance.CreateAccount(accountType)
	log := requestLogger(r)
	log.Info().Str("account", account.Number()).Str("type", account.Type().String()).Msg("account opened")
	respondJSON(w, http.StatusCreated, accountPayload(account))
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.finance.AllAccounts()
	response := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, accountPayload(account))
	}
	respondJSON(w, http.StatusOK, response)
}

// lookupAccount writes the error response itself when it returns false.
func (h *Handler) lookupAccount(w http.ResponseWriter, r *http.Request) (*ledger.Account, bool) {
	number := chi.URLParam(r, "number")
	if err := validator.ValidateAccountNumber(number); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	account, ok := h.finance.GetAccount(number)
	if !ok {
		respondError(w, http.StatusNotFound, "account not found")
		return nil, false
	}
	return account, true
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.lookupAccount(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, accountPayload(account))
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.lookupAccount(w, r)
	if !ok {
		return
	}
	if !h.finance.DeleteAccount(account.Number()) {
		respondError(w, http.StatusConflict, "balance_not_zero")
		return
	}
	log := requestLogger(r)
	log.Info().Str("account", account.Number()).Msg("account closed")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SelectAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.lookupAccount(w, r)
	if !ok {
		return
	}
	if !h.finance.SelectAccount(account.Number()) {
		respondError(w, http.StatusNotFound, "account not found")
		return
	}
	respondJSON(w, http.StatusOK, accountPayload(account))
}

func (h *Handler) CurrentAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.finance.CurrentAccount()
	if !ok {
		respondError(w, http.StatusNotFound, "no account selected")
		return
	}
	respondJSON(w, http.StatusOK, accountPayload(account))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, ledger.CategoryDeposit, h.finance.Deposit)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, ledger.CategoryWithdrawal, h.finance.Withdraw)
}

// move runs a deposit or withdrawal. The account is known to exist when apply
// is called, so a false result can only mean insufficient funds.
func (h *Handler) move(w http.ResponseWriter, r *http.Request, fallback string, apply func(string, decimal.Decimal, string) (bool, error)) {
	account, ok := h.lookupAccount(w, r)
	if !ok {
		return
	}
	var req movementRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = fallback
	}
	if err := validator.ValidateDescription(description); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	log := requestLogger(r)
	done, err := apply(account.Number(), amount, description)
	if errors.Is(err, ledger.ErrInvalidAmount) {
		respondError(w, http.StatusBadRequest, errInvalidAmount.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Str("account", account.Number()).Msg("transaction failed")
		respondError(w, http.StatusInternalServerError, "unable to apply transaction")
		return
	}
	if !done {
		if _, exists := h.finance.GetAccount(account.Number()); !exists {
			respondError(w, http.StatusNotFound, "account not found")
			return
		}
		log.Info().Str("account", account.Number()).Str("amount", money.String(amount)).Msg("transaction refused")
		respondError(w, http.StatusUnprocessableEntity, "insufficient_funds")
		return
	}
	log.Info().
		Str("account", account.Number()).
		Str("category", fallback).
		Str("amount", money.String(amount)).
		Msg("transaction applied")
	respondJSON(w, http.StatusOK, accountPayload(account))
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	account, ok := h.lookupAccount(w, r)
	if !ok {
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), h.cfg.HistoryPageSize)
	history := account.RecentTransactions(limit)
	response := make([]map[string]any, 0, len(history))
	for _, tx := range history {
		response = append(response, transactionPayload(tx))
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) SelfCheck(w http.ResponseWriter, r *http.Request) {
	rows := h.finance.SelfCheck()
	response := make([]map[string]any, 0, len(rows))
	for _, item := range rows {
		response = append(response, map[string]any{
			"account_number":  item.AccountNumber,
			"account_balance": money.String(item.AccountBalance),
			"ledger_sum":      money.String(item.LedgerSum),
			"difference":      money.String(item.Difference),
		})
	}
	respondJSON(w, http.StatusOK, response)
}

func parseInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
