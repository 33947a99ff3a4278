package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/calc"
	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

type calculatorRequest struct {
	Principal           string `json:"principal"`
	AnnualRate          string `json:"annual_rate"`
	Years               int    `json:"years"`
	MonthlyContribution string `json:"monthly_contribution"`
	CompoundFrequency   int    `json:"compound_frequency"`
}

var errInvalidNumber = errors.New("invalid_number")

func parseDecimal(raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := money.Parse(raw)
	if err != nil {
		return decimal.Zero, errInvalidNumber
	}
	return value, nil
}

// decodeCalculator writes the error response itself when it returns false.
func decodeCalculator(w http.ResponseWriter, r *http.Request) (calculatorRequest, decimal.Decimal, decimal.Decimal, bool) {
	var req calculatorRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return req, decimal.Zero, decimal.Zero, false
	}
	principal, err := money.Parse(req.Principal)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid principal")
		return req, decimal.Zero, decimal.Zero, false
	}
	rate, err := money.Parse(req.AnnualRate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid annual_rate")
		return req, decimal.Zero, decimal.Zero, false
	}
	return req, principal, rate, true
}

func (h *Handler) LoanCalculator(w http.ResponseWriter, r *http.Request) {
	req, principal, rate, ok := decodeCalculator(w, r)
	if !ok {
		return
	}
	summary, err := calc.Loan(principal, rate, req.Years)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"principal":       money.String(summary.Principal),
		"annual_rate":     summary.AnnualRate.String(),
		"years":           summary.Years,
		"monthly_payment": money.String(summary.MonthlyPayment),
		"total_interest":  money.String(summary.TotalInterest),
		"total_payment":   money.String(summary.TotalPayment),
	})
}

func (h *Handler) InvestmentCalculator(w http.ResponseWriter, r *http.Request) {
	req, principal, rate, ok := decodeCalculator(w, r)
	if !ok {
		return
	}
	contribution, err := parseDecimal(req.MonthlyContribution, decimal.Zero)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid monthly_contribution")
		return
	}
	projection, err := calc.Investment(principal, rate, req.Years, contribution)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"principal":            money.String(projection.Principal),
		"annual_rate":          projection.AnnualRate.String(),
		"years":                projection.Years,
		"monthly_contribution": money.String(projection.MonthlyContribution),
		"total_contributions":  money.String(projection.TotalContributions),
		"total_earnings":       money.String(projection.TotalEarnings),
		"future_value":         money.String(projection.FutureValue),
	})
}

func (h *Handler) CompoundCalculator(w http.ResponseWriter, r *http.Request) {
	req, principal, rate, ok := decodeCalculator(w, r)
	if !ok {
		return
	}
	frequency := req.CompoundFrequency
	if frequency == 0 {
		frequency = calc.DefaultCompoundFrequency
	}
	summary, err := calc.Compound(principal, rate, req.Years, frequency)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"principal":          money.String(summary.Principal),
		"annual_rate":        summary.AnnualRate.String(),
		"years":              summary.Years,
		"compound_frequency": summary.CompoundFrequency,
		"interest_earned":    money.String(summary.InterestEarned),
		"final_amount":       money.String(summary.FinalAmount),
	})
}
