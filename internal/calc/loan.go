package calc

import (
	"errors"

	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTerm      = errors.New("term in years is out of range")
	ErrInvalidFrequency = errors.New("compound frequency is out of range")
)

const (
	MonthsPerYear            = 12
	DefaultCompoundFrequency = 12

	// Growth factors are exact decimals, so cost rises with every period.
	MaxYears             = 100
	MaxCompoundFrequency = 365
)

// MonthlyPayment is the fixed payment that retires principal over years of
// monthly installments. The monthly rate is rounded to six places before use.
func MonthlyPayment(principal, annualRate decimal.Decimal, years int) (decimal.Decimal, error) {
	if years <= 0 || years > MaxYears {
		return decimal.Zero, ErrInvalidTerm
	}
	monthlyRate := money.PeriodRate(annualRate, MonthsPerYear)
	payments := years * MonthsPerYear
	if monthlyRate.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(payments)), money.DisplayScale), nil
	}
	factor := power(decimal.NewFromInt(1).Add(monthlyRate), payments)
	denominator := factor.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return decimal.Zero, ErrInvalidTerm
	}
	return principal.Mul(monthlyRate).Mul(factor).DivRound(denominator, money.DisplayScale), nil
}

func TotalInterest(principal, monthlyPayment decimal.Decimal, years int) decimal.Decimal {
	return totalPaid(monthlyPayment, years).Sub(principal)
}

type LoanSummary struct {
	Principal      decimal.Decimal `json:"principal"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	Years          int             `json:"years"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
}

func Loan(principal, annualRate decimal.Decimal, years int) (LoanSummary, error) {
	payment, err := MonthlyPayment(principal, annualRate, years)
	if err != nil {
		return LoanSummary{}, err
	}
	return LoanSummary{
		Principal:      principal,
		AnnualRate:     annualRate,
		Years:          years,
		MonthlyPayment: payment,
		TotalInterest:  TotalInterest(principal, payment, years),
		TotalPayment:   totalPaid(payment, years),
	}, nil
}

func totalPaid(monthlyPayment decimal.Decimal, years int) decimal.Decimal {
	return monthlyPayment.Mul(decimal.NewFromInt(int64(years * MonthsPerYear)))
}

// power multiplies base by itself n times with no intermediate rounding.
// power is exact; squaring keeps the number of multiplications logarithmic.
func power(base decimal.Decimal, n int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}
	return result
}
