package handlers

import (
	"net/http"
	"testing"

	"fintrack/internal/ledger"

	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestLoanCalculator(t *testing.T) {
	api := newTestAPI(t)
	rr := api.do(t, http.MethodPost, "/calculators/loan", map[string]any{"principal": "200000", "annual_rate": "0.06", "years": 30})
	expectStatus(t, rr, http.StatusOK)
	payload := decodeObject(t, rr)
	if payload["monthly_payment"] != "1199.10" || payload["total_interest"] != "231676.00" || payload["total_payment"] != "431676.00" {
		t.Fatalf("unexpected loan %#v", payload)
	}

	expectStatus(t, api.do(t, http.MethodPost, "/calculators/loan", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 0}), http.StatusBadRequest)
	expectStatus(t, api.do(t, http.MethodPost, "/calculators/loan", map[string]any{"principal": "lots", "annual_rate": "0.05", "years": 1}), http.StatusBadRequest)
}

func TestInvestmentCalculator(t *testing.T) {
	api := newTestAPI(t)
	rr := api.do(t, http.MethodPost, "/calculators/investment", map[string]any{
		"principal": "1000", "annual_rate": "0.07", "years": 10, "monthly_contribution": "100",
	})
	expectStatus(t, rr, http.StatusOK)
	payload := decodeObject(t, rr)
	if payload["future_value"] != "19418.64" || payload["total_contributions"] != "13000.00" || payload["total_earnings"] != "6418.64" {
		t.Fatalf("unexpected projection %#v", payload)
	}

	rr = api.do(t, http.MethodPost, "/calculators/investment", map[string]any{"principal": "1000", "annual_rate": "0.07", "years": 1})
	expectStatus(t, rr, http.StatusOK)
	if got := decodeObject(t, rr)["future_value"]; got != "1072.29" {
		t.Fatalf("unexpected future value %v", got)
	}
}

func TestCompoundCalculator(t *testing.T) {
	api := newTestAPI(t)
	rr := api.do(t, http.MethodPost, "/calculators/compound", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 10})
	expectStatus(t, rr, http.StatusOK)
	payload := decodeObject(t, rr)
	if payload["final_amount"] != "1647.08" || payload["compound_frequency"] != float64(12) {
		t.Fatalf("unexpected compound %#v", payload)
	}
	expectStatus(t, api.do(t, http.MethodPost, "/calculators/compound", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 1, "compound_frequency": -4}), http.StatusBadRequest)
}

func TestCalculatorsRejectUnboundedTerms(t *testing.T) {
	api := newTestAPI(t)
	cases := []struct {
		path string
		body map[string]any
	}{
		{"/calculators/loan", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 100000}},
		{"/calculators/investment", map[string]any{"principal": "1000", "annual_rate": "0.07", "years": 100000}},
		{"/calculators/compound", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 101}},
		{"/calculators/compound", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 1, "compound_frequency": 100000}},
	}
	for _, tc := range cases {
		rr := api.do(t, http.MethodPost, tc.path, tc.body)
		expectStatus(t, rr, http.StatusBadRequest)
	}

	rr := api.do(t, http.MethodPost, "/calculators/compound", map[string]any{"principal": "1000", "annual_rate": "0.05", "years": 100, "compound_frequency": 365})
	expectStatus(t, rr, http.StatusOK)
}

func TestSummaryAndPerformanceReports(t *testing.T) {
	api := newTestAPI(t)
	account := api.finance.CreateAccount(ledger.SavingsAccount())
	_ = account.Deposit(dec("1000"), "seed")
	_, _ = account.Withdraw(dec("250"), "rent")

	rr := api.do(t, http.MethodGet, "/reports/summary", nil)
	expectStatus(t, rr, http.StatusOK)
	summary := decodeObject(t, rr)
	if summary["total_balance"] != "750.00" || summary["net_cash_flow"] != "750.00" || summary["transaction_count"] != float64(2) {
		t.Fatalf("unexpected summary %#v", summary)
	}

	rr = api.do(t, http.MethodGet, "/reports/performance", nil)
	expectStatus(t, rr, http.StatusOK)
	rows := decodeList(t, rr)
	if len(rows) != 1 || rows[0]["projected_interest"] != "22.50" || rows[0]["account_type"] != "Savings" {
		t.Fatalf("unexpected performance %#v", rows)
	}
}
