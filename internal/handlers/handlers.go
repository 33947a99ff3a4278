package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/money"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var errInvalidAmount = errors.New("invalid_amount")

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// requestLogger returns the request-scoped logger, tagged with the token
// subject on authenticated routes.
func requestLogger(r *http.Request) zerolog.Logger {
	log := logger.FromContext(r.Context())
	if subject, ok := middleware.SubjectFromContext(r.Context()); ok {
		return log.With().Str("subject", subject).Logger()
	}
	return log
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := money.ParsePositive(raw)
	if err != nil {
		return decimal.Zero, errInvalidAmount
	}
	return amount, nil
}
