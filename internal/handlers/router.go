package handlers

import (
	"net/http"

	"fintrack/internal/config"
	"fintrack/internal/middleware"
	"fintrack/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type Handler struct {
	cfg            config.Config
	passphraseHash string
	finance        FinanceService
	budgets        BudgetService
	hub            *websocket.Hub
	logger         zerolog.Logger
}

// New wires the API. passphraseHash is the bcrypt hash exchanged for tokens
// at /auth/token.
func New(cfg config.Config, passphraseHash string, finance FinanceService, budgets BudgetService, hub *websocket.Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		cfg:            cfg,
		passphraseHash: passphraseHash,
		finance:        finance,
		budgets:        budgets,
		hub:            hub,
		logger:         logger,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.RequestLogger(h.logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Post("/auth/token", h.IssueToken)
	router.Get("/ws/balances", h.WSBalances)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.CreateAccount)
			r.Get("/", h.ListAccounts)
			r.Get("/current", h.CurrentAccount)
			r.Get("/self-check", h.SelfCheck)
			r.Route("/{number}", func(r chi.Router) {
				r.Get("/", h.GetAccount)
				r.Delete("/", h.DeleteAccount)
				r.Post("/select", h.SelectAccount)
				r.Post("/deposit", h.Deposit)
				r.Post("/withdraw", h.Withdraw)
				r.Get("/transactions", h.ListTransactions)
			})
		})
		r.Post("/transfers", h.Transfer)

		r.Route("/budgets", func(r chi.Router) {
			r.Post("/", h.CreateBudget)
			r.Get("/", h.ListBudgets)
			r.Get("/{category}", h.GetBudget)
			r.Post("/{category}/expenses", h.AddExpense)
		})

		r.Route("/calculators", func(r chi.Router) {
			r.Post("/loan", h.LoanCalculator)
			r.Post("/investment", h.InvestmentCalculator)
			r.Post("/compound", h.CompoundCalculator)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", h.SummaryReport)
			r.Get("/performance", h.PerformanceReport)
			r.Get("/budgets", h.BudgetReport)
		})
	})
	return router
}
