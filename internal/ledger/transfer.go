package ledger

import "github.com/shopspring/decimal"

// TransferBetween debits from and credits to while holding both account
// locks, so either both legs are recorded or neither is. Locks are taken in
// account-number order.
func TransferBetween(from, to *Account, amount decimal.Decimal, debitDescription, creditDescription string) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	unlock := lockPair(from, to)
	defer unlock()
	if !from.debit(amount, debitDescription) {
		return false, nil
	}
	to.credit(amount, creditDescription)
	return true, nil
}

func lockPair(first, second *Account) func() {
	if first == second {
		first.mu.Lock()
		return first.mu.Unlock
	}
	left, right := orderedAccounts(first, second)
	left.mu.Lock()
	right.mu.Lock()
	return func() {
		right.mu.Unlock()
		left.mu.Unlock()
	}
}

func orderedAccounts(first, second *Account) (*Account, *Account) {
	if first.number <= second.number {
		return first, second
	}
	return second, first
}
