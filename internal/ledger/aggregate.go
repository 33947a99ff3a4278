package ledger

import "github.com/shopspring/decimal"

// Transactions aggregates over any set of history records, whether from one
// account or the union of many.
type Transactions []Transaction

func (ts Transactions) TotalIncome() decimal.Decimal {
	return ts.sumOf(Income)
}

func (ts Transactions) TotalExpenses() decimal.Decimal {
	return ts.sumOf(Expense)
}

func (ts Transactions) NetCashFlow() decimal.Decimal {
	return ts.TotalIncome().Sub(ts.TotalExpenses())
}

func (ts Transactions) sumOf(txType TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ts {
		if t.Type == txType {
			total = total.Add(t.Amount)
		}
	}
	return total
}
