package calc

import (
	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

// FutureValue steps month by month: the contribution lands first, then the
// month's growth applies. Only the final value is rounded.
func FutureValue(principal, annualRate decimal.Decimal, years int, monthlyContribution decimal.Decimal) (decimal.Decimal, error) {
	if years < 0 || years > MaxYears {
		return decimal.Zero, ErrInvalidTerm
	}
	growth := decimal.NewFromInt(1).Add(money.PeriodRate(annualRate, MonthsPerYear))
	value := principal
	for month := 0; month < years*MonthsPerYear; month++ {
		value = value.Add(monthlyContribution).Mul(growth)
	}
	return money.Round(value), nil
}

// CompoundInterest returns the final amount after compoundFrequency periods a
// year for years, rounded at the end.
func CompoundInterest(principal, annualRate decimal.Decimal, years, compoundFrequency int) (decimal.Decimal, error) {
	if years < 0 || years > MaxYears {
		return decimal.Zero, ErrInvalidTerm
	}
	if compoundFrequency <= 0 || compoundFrequency > MaxCompoundFrequency {
		return decimal.Zero, ErrInvalidFrequency
	}
	growth := decimal.NewFromInt(1).Add(money.PeriodRate(annualRate, compoundFrequency))
	return money.Round(principal.Mul(power(growth, compoundFrequency*years))), nil
}

type InvestmentProjection struct {
	Principal           decimal.Decimal `json:"principal"`
	AnnualRate          decimal.Decimal `json:"annual_rate"`
	Years               int             `json:"years"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	TotalContributions  decimal.Decimal `json:"total_contributions"`
	TotalEarnings       decimal.Decimal `json:"total_earnings"`
	FutureValue         decimal.Decimal `json:"future_value"`
}

func Investment(principal, annualRate decimal.Decimal, years int, monthlyContribution decimal.Decimal) (InvestmentProjection, error) {
	future, err := FutureValue(principal, annualRate, years, monthlyContribution)
	if err != nil {
		return InvestmentProjection{}, err
	}
	contributions := principal.Add(monthlyContribution.Mul(decimal.NewFromInt(int64(years * MonthsPerYear))))
	return InvestmentProjection{
		Principal:           principal,
		AnnualRate:          annualRate,
		Years:               years,
		MonthlyContribution: monthlyContribution,
		TotalContributions:  contributions,
		TotalEarnings:       future.Sub(contributions),
		FutureValue:         future,
	}, nil
}

type CompoundSummary struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRate        decimal.Decimal `json:"annual_rate"`
	Years             int             `json:"years"`
	CompoundFrequency int             `json:"compound_frequency"`
	InterestEarned    decimal.Decimal `json:"interest_earned"`
	FinalAmount       decimal.Decimal `json:"final_amount"`
}

func Compound(principal, annualRate decimal.Decimal, years, compoundFrequency int) (CompoundSummary, error) {
	final, err := CompoundInterest(principal, annualRate, years, compoundFrequency)
	if err != nil {
		return CompoundSummary{}, err
	}
	return CompoundSummary{
		Principal:         principal,
		AnnualRate:        annualRate,
		Years:             years,
		CompoundFrequency: compoundFrequency,
		InterestEarned:    final.Sub(principal),
		FinalAmount:       final,
	}, nil
}
