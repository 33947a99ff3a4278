package services

import (
	"errors"
	"sync"
	"testing"

	"fintrack/internal/ledger"
	"fintrack/internal/websocket"

	"github.com/shopspring/decimal"
)

type stubHub struct {
	mu    sync.Mutex
	calls []websocket.BalanceUpdate
}

func (s *stubHub) BroadcastBalance(update websocket.BalanceUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, update)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCreateAccountNumbering(t *testing.T) {
	manager := NewFinanceManager()
	first := manager.CreateAccount(ledger.SavingsAccount())
	second := manager.CreateAccount(ledger.CheckingAccount())
	if first.Number() != "ACC1000" || second.Number() != "ACC1001" {
		t.Fatalf("unexpected numbers %s %s", first.Number(), second.Number())
	}
	current, ok := manager.CurrentAccount()
	if !ok || current != second {
		t.Fatalf("expected newest account to be selected")
	}
}

func TestManagersDoNotShareCounters(t *testing.T) {
	a := NewFinanceManager()
	b := NewFinanceManager()
	a.CreateAccount(ledger.SavingsAccount())
	a.CreateAccount(ledger.SavingsAccount())
	if got := b.CreateAccount(ledger.SavingsAccount()).Number(); got != "ACC1000" {
		t.Fatalf("expected independent counter, got %s", got)
	}
}

func TestStartingNumberOption(t *testing.T) {
	manager := NewFinanceManager(WithStartingNumber(5000))
	if got := manager.CreateAccount(ledger.SavingsAccount()).Number(); got != "ACC5000" {
		t.Fatalf("unexpected number %s", got)
	}
}

func TestAccountNumbersNeverReused(t *testing.T) {
	manager := NewFinanceManager()
	account := manager.CreateAccount(ledger.CheckingAccount())
	if !manager.DeleteAccount(account.Number()) {
		t.Fatal("expected delete of empty account to succeed")
	}
	if got := manager.CreateAccount(ledger.CheckingAccount()).Number(); got != "ACC1001" {
		t.Fatalf("expected ACC1001, got %s", got)
	}
}

func TestSelectAccount(t *testing.T) {
	manager := NewFinanceManager()
	first := manager.CreateAccount(ledger.SavingsAccount())
	manager.CreateAccount(ledger.CheckingAccount())
	if !manager.SelectAccount(first.Number()) {
		t.Fatal("expected select to succeed")
	}
	current, _ := manager.CurrentAccount()
	if current != first {
		t.Fatalf("expected %s selected", first.Number())
	}
}

func TestSelectUnknownAccountKeepsSelection(t *testing.T) {
	manager := NewFinanceManager()
	account := manager.CreateAccount(ledger.SavingsAccount())
	if manager.SelectAccount("ACC9999") {
		t.Fatal("expected select to fail")
	}
	current, ok := manager.CurrentAccount()
	if !ok || current != account {
		t.Fatal("failed lookup must not clear the selection")
	}
}

func TestCurrentAccountEmpty(t *testing.T) {
	if _, ok := NewFinanceManager().CurrentAccount(); ok {
		t.Fatal("expected no selection")
	}
}

func TestDeleteAccountNonZeroBalance(t *testing.T) {
	manager := NewFinanceManager()
	account := manager.CreateAccount(ledger.CheckingAccount())
	if err := account.Deposit(dec("0.01"), "cent"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.DeleteAccount(account.Number()) {
		t.Fatal("expected delete to be refused")
	}
	if _, ok := manager.GetAccount(account.Number()); !ok {
		t.Fatal("account must stay registered")
	}
}

func TestDeleteAccountClearsSelection(t *testing.T) {
	manager := NewFinanceManager()
	first := manager.CreateAccount(ledger.CheckingAccount())
	second := manager.CreateAccount(ledger.CheckingAccount())
	if !manager.DeleteAccount(first.Number()) {
		t.Fatal("expected delete to succeed")
	}
	if current, ok := manager.CurrentAccount(); !ok || current != second {
		t.Fatal("deleting another account must keep the selection")
	}
	if !manager.DeleteAccount(second.Number()) {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := manager.CurrentAccount(); ok {
		t.Fatal("expected selection to be cleared")
	}
	if manager.DeleteAccount("ACC4242") {
		t.Fatal("expected unknown delete to fail")
	}
}

func TestDeleteAccountAfterDrainingBalance(t *testing.T) {
	manager := NewFinanceManager()
	account := manager.CreateAccount(ledger.CheckingAccount())
	_ = account.Deposit(dec("10.50"), "in")
	if _, err := account.Withdraw(dec("10.5"), "out"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !manager.DeleteAccount(account.Number()) {
		t.Fatal("expected delete of drained account to succeed")
	}
}

func TestAllAccountsOrderedAndStable(t *testing.T) {
	manager := NewFinanceManager(WithStartingNumber(998))
	for i := 0; i < 4; i++ {
		manager.CreateAccount(ledger.SavingsAccount())
	}
	first := manager.AllAccounts()
	second := manager.AllAccounts()
	want := []string{"ACC998", "ACC999", "ACC1000", "ACC1001"}
	for i, number := range want {
		if first[i].Number() != number || second[i] != first[i] {
			t.Fatalf("unexpected order at %d: %s", i, first[i].Number())
		}
	}
}

func TestDepositAndWithdrawThroughManager(t *testing.T) {
	hub := &stubHub{}
	manager := NewFinanceManager(WithBalanceHub(hub))
	account := manager.CreateAccount(ledger.CheckingAccount())

	ok, err := manager.Deposit(account.Number(), dec("100"), "pay")
	if err != nil || !ok {
		t.Fatalf("expected deposit, got %v %v", ok, err)
	}
	ok, err = manager.Withdraw(account.Number(), dec("150"), "too much")
	if err != nil || ok {
		t.Fatalf("expected refused withdraw, got %v %v", ok, err)
	}
	ok, err = manager.Withdraw(account.Number(), dec("40"), "groceries")
	if err != nil || !ok {
		t.Fatalf("expected withdraw, got %v %v", ok, err)
	}
	if _, err := manager.Deposit(account.Number(), decimal.Zero, "zero"); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if ok, err := manager.Deposit("ACC0", dec("1"), "missing"); ok || err != nil {
		t.Fatalf("expected not found, got %v %v", ok, err)
	}
	if len(hub.calls) != 2 {
		t.Fatalf("expected 2 broadcasts, got %d", len(hub.calls))
	}
	if hub.calls[1].AccountNumber != account.Number() || hub.calls[1].Balance != "60.00" {
		t.Fatalf("unexpected broadcast %#v", hub.calls[1])
	}
}

func TestTransferSuccess(t *testing.T) {
	hub := &stubHub{}
	manager := NewFinanceManager(WithBalanceHub(hub))
	from := manager.CreateAccount(ledger.CheckingAccount())
	to := manager.CreateAccount(ledger.SavingsAccount())
	_ = from.Deposit(dec("500"), "seed")

	ok, err := manager.Transfer(from.Number(), to.Number(), dec("125.25"))
	if err != nil || !ok {
		t.Fatalf("expected transfer, got %v %v", ok, err)
	}
	if !from.Balance().Equal(dec("374.75")) || !to.Balance().Equal(dec("125.25")) {
		t.Fatalf("unexpected balances %s / %s", from.Balance(), to.Balance())
	}
	debit := from.TransactionHistory()[1]
	credit := to.TransactionHistory()[0]
	if debit.Description != "Transfer to ACC1001" || credit.Description != "Transfer from ACC1000" {
		t.Fatalf("unexpected descriptions %q / %q", debit.Description, credit.Description)
	}
	if len(hub.calls) != 2 {
		t.Fatalf("expected 2 broadcasts, got %d", len(hub.calls))
	}
}

func TestTransferUnknownAccount(t *testing.T) {
	manager := NewFinanceManager()
	from := manager.CreateAccount(ledger.CheckingAccount())
	_ = from.Deposit(dec("50"), "seed")
	ok, err := manager.Transfer(from.Number(), "ACC7777", dec("10"))
	if ok || err != nil {
		t.Fatalf("expected refused transfer, got %v %v", ok, err)
	}
	if !from.Balance().Equal(dec("50")) || from.TransactionCount() != 1 {
		t.Fatal("source must be untouched")
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	manager := NewFinanceManager()
	from := manager.CreateAccount(ledger.CheckingAccount())
	to := manager.CreateAccount(ledger.CheckingAccount())
	_ = from.Deposit(dec("5"), "seed")
	ok, err := manager.Transfer(from.Number(), to.Number(), dec("10"))
	if ok || err != nil {
		t.Fatalf("expected refused transfer, got %v %v", ok, err)
	}
	if !from.Balance().Equal(dec("5")) || !to.Balance().IsZero() || to.TransactionCount() != 0 {
		t.Fatal("balances must be untouched")
	}
}

func TestTransferInvalidAmount(t *testing.T) {
	manager := NewFinanceManager()
	from := manager.CreateAccount(ledger.CheckingAccount())
	to := manager.CreateAccount(ledger.CheckingAccount())
	if _, err := manager.Transfer(from.Number(), to.Number(), dec("-1")); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestConcurrentTransfersConserveMoney(t *testing.T) {
	manager := NewFinanceManager()
	accounts := make([]*ledger.Account, 4)
	for i := range accounts {
		accounts[i] = manager.CreateAccount(ledger.CheckingAccount())
		_ = accounts[i].Deposit(dec("100"), "seed")
	}
	var wg sync.WaitGroup
	for i := 0; i < 400; i++ {
		from := accounts[i%4].Number()
		to := accounts[(i+1+i/4)%4].Number()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = manager.Transfer(from, to, dec("7.5"))
		}()
	}
	wg.Wait()
	summary := manager.Summary()
	if !summary.TotalBalance.Equal(dec("400")) {
		t.Fatalf("expected 400 in total, got %s", summary.TotalBalance)
	}
	for _, row := range manager.SelfCheck() {
		if !row.Difference.IsZero() {
			t.Fatalf("%s out of balance by %s", row.AccountNumber, row.Difference)
		}
	}
}
