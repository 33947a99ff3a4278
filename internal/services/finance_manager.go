package services

import (
	"fmt"
	"sort"
	"sync"

	"fintrack/internal/ledger"
	"fintrack/internal/money"
	"fintrack/internal/websocket"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const DefaultStartingNumber = 1000

type BalanceHub interface {
	BroadcastBalance(update websocket.BalanceUpdate)
}

// FinanceManager owns the account registry. The current selection is an
// account number, never a copy of the account.
type FinanceManager struct {
	mu       sync.RWMutex
	accounts map[string]*ledger.Account
	current  string
	counter  int
	logger   zerolog.Logger
	hub      BalanceHub
}

type Option func(*FinanceManager)

func WithStartingNumber(n int) Option {
	return func(m *FinanceManager) {
		m.counter = n
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *FinanceManager) {
		m.logger = logger.With().Str("component", "finance").Logger()
	}
}

func WithBalanceHub(hub BalanceHub) Option {
	return func(m *FinanceManager) {
		m.hub = hub
	}
}

func NewFinanceManager(opts ...Option) *FinanceManager {
	m := &FinanceManager{
		accounts: make(map[string]*ledger.Account),
		counter:  DefaultStartingNumber,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateAccount registers a new account under the next unused number and
// selects it.
func (m *FinanceManager) CreateAccount(accountType ledger.AccountType) *ledger.Account {
	m.mu.Lock()
	number := fmt.Sprintf("ACC%d", m.counter)
	m.counter++
	account := ledger.NewAccount(number, accountType)
	m.accounts[number] = account
	m.current = number
	m.mu.Unlock()
	m.logger.Debug().Str("account", number).Str("type", accountType.String()).Msg("account created")
	return account
}

// SelectAccount changes the selection only when number exists.
func (m *FinanceManager) SelectAccount(number string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[number]; !ok {
		return false
	}
	m.current = number
	return true
}

func (m *FinanceManager) CurrentAccount() (*ledger.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == "" {
		return nil, false
	}
	account, ok := m.accounts[m.current]
	return account, ok
}

func (m *FinanceManager) GetAccount(number string) (*ledger.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accounts[number]
	return account, ok
}

// AllAccounts lists accounts ordered by number.
func (m *FinanceManager) AllAccounts() []*ledger.Account {
	m.mu.RLock()
	accounts := make([]*ledger.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	m.mu.RUnlock()
	sort.Slice(accounts, func(i, j int) bool {
		return lessAccountNumber(accounts[i].Number(), accounts[j].Number())
	})
	return accounts
}

// DeleteAccount removes an account whose balance is exactly zero. Numbers are
// never handed out again.
func (m *FinanceManager) DeleteAccount(number string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[number]
	if !ok {
		return false
	}
	if !account.Balance().IsZero() {
		m.logger.Info().Str("account", number).Msg("delete refused, balance not zero")
		return false
	}
	delete(m.accounts, number)
	if m.current == number {
		m.current = ""
	}
	m.logger.Debug().Str("account", number).Msg("account deleted")
	return true
}

// Deposit reports false when the account does not exist.
func (m *FinanceManager) Deposit(number string, amount decimal.Decimal, description string) (bool, error) {
	m.mu.RLock()
	account, ok := m.accounts[number]
	if !ok {
		m.mu.RUnlock()
		return false, nil
	}
	err := account.Deposit(amount, description)
	m.mu.RUnlock()
	if err != nil {
		return false, err
	}
	m.logger.Debug().Str("account", number).Str("amount", amount.String()).Msg("deposit")
	m.notify(account)
	return true, nil
}

// Withdraw reports false when the account does not exist or funds are short.
func (m *FinanceManager) Withdraw(number string, amount decimal.Decimal, description string) (bool, error) {
	m.mu.RLock()
	account, ok := m.accounts[number]
	if !ok {
		m.mu.RUnlock()
		return false, nil
	}
	withdrawn, err := account.Withdraw(amount, description)
	m.mu.RUnlock()
	if err != nil {
		return false, err
	}
	if !withdrawn {
		m.logger.Info().Str("account", number).Str("amount", amount.String()).Msg("withdraw refused, insufficient funds")
		return false, nil
	}
	m.logger.Debug().Str("account", number).Str("amount", amount.String()).Msg("withdraw")
	m.notify(account)
	return true, nil
}

// Transfer moves amount between two registered accounts. Either both legs
// are recorded or neither is.
func (m *FinanceManager) Transfer(fromNumber, toNumber string, amount decimal.Decimal) (bool, error) {
	m.mu.RLock()
	from, fromOK := m.accounts[fromNumber]
	to, toOK := m.accounts[toNumber]
	if !fromOK || !toOK {
		m.mu.RUnlock()
		m.logger.Info().Str("from", fromNumber).Str("to", toNumber).Msg("transfer refused, unknown account")
		return false, nil
	}
	moved, err := ledger.TransferBetween(from, to, amount,
		"Transfer to "+toNumber,
		"Transfer from "+fromNumber,
	)
	m.mu.RUnlock()
	if err != nil {
		return false, err
	}
	if !moved {
		m.logger.Info().Str("from", fromNumber).Str("to", toNumber).Str("amount", amount.String()).Msg("transfer refused, insufficient funds")
		return false, nil
	}
	m.logger.Debug().Str("from", fromNumber).Str("to", toNumber).Str("amount", amount.String()).Msg("transfer")
	m.notify(from)
	if to != from {
		m.notify(to)
	}
	return true, nil
}

func (m *FinanceManager) notify(account *ledger.Account) {
	if m.hub == nil {
		return
	}
	m.hub.BroadcastBalance(websocket.BalanceUpdate{
		AccountNumber: account.Number(),
		Balance:       money.String(account.Balance()),
	})
}

// lessAccountNumber orders "ACC999" before "ACC1000".
func lessAccountNumber(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
