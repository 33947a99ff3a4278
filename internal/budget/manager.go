package budget

import (
	"sort"
	"sync"

	"fintrack/internal/money"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Manager struct {
	mu      sync.RWMutex
	budgets map[string]*Budget
	logger  zerolog.Logger
}

type Option func(*Manager)

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger.With().Str("component", "budgets").Logger()
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		budgets: make(map[string]*Budget),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create installs a fresh budget for category. An existing budget for the
// same category is replaced and its spending is discarded.
func (m *Manager) Create(category string, limit decimal.Decimal) error {
	b, err := New(category, limit)
	if err != nil {
		return err
	}
	m.mu.Lock()
	_, replaced := m.budgets[category]
	m.budgets[category] = b
	m.mu.Unlock()
	if replaced {
		m.logger.Info().Str("category", category).Msg("budget replaced, spending reset")
	} else {
		m.logger.Debug().Str("category", category).Str("limit", limit.String()).Msg("budget created")
	}
	return nil
}

func (m *Manager) AddExpense(category string, amount decimal.Decimal) bool {
	b, ok := m.Get(category)
	if !ok {
		m.logger.Info().Str("category", category).Msg("expense for unknown budget")
		return false
	}
	if !b.AddExpense(amount) {
		m.logger.Info().Str("category", category).Str("amount", amount.String()).Msg("expense refused")
		return false
	}
	m.logger.Debug().Str("category", category).Str("amount", amount.String()).Msg("expense recorded")
	return true
}

func (m *Manager) Get(category string) (*Budget, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.budgets[category]
	return b, ok
}

func (m *Manager) Status(category string) (Status, bool) {
	b, ok := m.Get(category)
	if !ok {
		return Status{}, false
	}
	return b.Status(), true
}

// All returns the budgets ordered by category.
func (m *Manager) All() []*Budget {
	m.mu.RLock()
	all := make([]*Budget, 0, len(m.budgets))
	for _, b := range m.budgets {
		all = append(all, b)
	}
	m.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool {
		return all[i].category < all[j].category
	})
	return all
}

type Analysis struct {
	Budgets        []Status        `json:"budgets"`
	TotalLimit     decimal.Decimal `json:"total_limit"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
}

func (m *Manager) Analysis() Analysis {
	analysis := Analysis{Budgets: []Status{}}
	var limits, spent []decimal.Decimal
	for _, b := range m.All() {
		status := b.Status()
		analysis.Budgets = append(analysis.Budgets, status)
		limits = append(limits, status.Limit)
		spent = append(spent, status.Spent)
	}
	analysis.TotalLimit = money.Sum(limits...)
	analysis.TotalSpent = money.Sum(spent...)
	analysis.TotalRemaining = analysis.TotalLimit.Sub(analysis.TotalSpent)
	return analysis
}
