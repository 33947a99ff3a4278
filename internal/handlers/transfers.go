package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/ledger"
	"fintrack/internal/money"
	"fintrack/internal/validator"
)

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	for _, number := range []string{from, to} {
		if err := validator.ValidateAccountNumber(number); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	log := requestLogger(r).With().Str("from", from).Str("to", to).Str("amount", money.String(amount)).Logger()
	moved, err := h.finance.Transfer(from, to, amount)
	if errors.Is(err, ledger.ErrInvalidAmount) {
		respondError(w, http.StatusBadRequest, errInvalidAmount.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("transfer failed")
		respondError(w, http.StatusInternalServerError, "transfer failed")
		return
	}
	if !moved {
		log.Info().Msg("transfer refused")
		respondError(w, http.StatusUnprocessableEntity, "transfer_failed")
		return
	}
	log.Info().Msg("transfer applied")
	response := map[string]any{
		"from":   from,
		"to":     to,
		"amount": money.String(amount),
	}
	if account, ok := h.finance.GetAccount(from); ok {
		response["from_balance"] = money.String(account.Balance())
	}
	if account, ok := h.finance.GetAccount(to); ok {
		response["to_balance"] = money.String(account.Balance())
	}
	respondJSON(w, http.StatusCreated, response)
}
