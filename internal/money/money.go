package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNonPositive   = errors.New("amount must be positive")
)

const (
	// DisplayScale is the number of fractional digits of every externally visible amount.
	DisplayScale int32 = 2
	// RateScale is the working scale of per-period rates derived from an annual rate.
	RateScale int32 = 6
	// RatioScale is the scale of ratios such as budget utilization before they become percentages.
	RatioScale int32 = 4
)

var hundred = decimal.NewFromInt(100)

// Round rounds half-up to DisplayScale.
func Round(value decimal.Decimal) decimal.Decimal {
	return value.Round(DisplayScale)
}

// PeriodRate splits an annual rate into one of periods equal parts, rounded half-up at RateScale.
// Compounding downstream uses the rounded rate.
func PeriodRate(annualRate decimal.Decimal, periods int) decimal.Decimal {
	return annualRate.DivRound(decimal.NewFromInt(int64(periods)), RateScale)
}

// Percent turns a ratio into a percentage, keeping RatioScale precision on the ratio.
func Percent(numerator, denominator decimal.Decimal) decimal.Decimal {
	return numerator.DivRound(denominator, RatioScale).Mul(hundred)
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, value := range values {
		total = total.Add(value)
	}
	return total
}

func Parse(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	sign := ""
	switch trimmed[0] {
	case '-':
		sign = "-"
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	parts := strings.SplitN(trimmed, ".", 2)
	wholePart := parts[0]
	if wholePart == "" {
		wholePart = "0"
	}
	if !isDigits(wholePart) {
		return decimal.Zero, ErrInvalidAmount
	}
	if len(parts) == 2 && (parts[1] == "" || !isDigits(parts[1])) {
		return decimal.Zero, ErrInvalidAmount
	}
	normalized := sign + wholePart
	if len(parts) == 2 {
		normalized += "." + parts[1]
	}
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return value, nil
}

func ParsePositive(input string) (decimal.Decimal, error) {
	value, err := Parse(input)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, ErrNonPositive
	}
	return value, nil
}

// String renders value at DisplayScale without a currency symbol.
func String(value decimal.Decimal) string {
	return value.StringFixed(DisplayScale)
}

// Format renders value as a dollar amount such as "$1000.00".
func Format(value decimal.Decimal) string {
	return "$" + String(value)
}

// FormatRate renders an annual rate such as 0.06 as "6%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
