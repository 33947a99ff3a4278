package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"fintrack/internal/budget"
	"fintrack/internal/calc"
	"fintrack/internal/ledger"
	"fintrack/internal/money"
	"fintrack/internal/report"
	"fintrack/internal/services"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const DefaultHistorySize = 10

type CLI struct {
	in          *bufio.Scanner
	lines       chan string
	readErr     error
	ctx         context.Context
	out         io.Writer
	finance     *services.FinanceManager
	budgets     *budget.Manager
	historySize int
	logger      zerolog.Logger
}

type Option func(*CLI)

func WithHistorySize(n int) Option {
	return func(c *CLI) {
		if n > 0 {
			c.historySize = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *CLI) {
		c.logger = logger
	}
}

func New(in io.Reader, out io.Writer, finance *services.FinanceManager, budgets *budget.Manager, opts ...Option) *CLI {
	c := &CLI{
		in:          bufio.NewScanner(in),
		lines:       make(chan string),
		ctx:         context.Background(),
		out:         out,
		finance:     finance,
		budgets:     budgets,
		historySize: DefaultHistorySize,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the user exits or input ends. Cancelling ctx
// interrupts any pending prompt and Run returns ctx.Err().
func (c *CLI) Run(ctx context.Context) error {
	c.ctx = ctx
	go c.readLines(ctx.Done())
	c.println("===================================")
	c.println("PERSONAL FINANCE MANAGER CLI")
	c.println("===================================")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.println("")
		c.println("========== MAIN MENU ==========")
		c.println("1. Account Management")
		c.println("2. Transactions")
		c.println("3. Budget Management")
		c.println("4. Financial Calculators")
		c.println("5. Reports & Analytics")
		c.println("6. Exit")
		c.println("==============================")
		choice, ok := c.prompt("Select an option: ")
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.readErr
		}
		switch choice {
		case "1":
			c.accountMenu()
		case "2":
			c.transactionMenu()
		case "3":
			c.budgetMenu()
		case "4":
			c.calculatorMenu()
		case "5":
			c.reportMenu()
		case "6":
			c.println("Thank you for using Personal Finance Manager!")
			return nil
		default:
			c.println("Invalid option. Please try again.")
		}
	}
}

func (c *CLI) accountMenu() {
	c.println("")
	c.println("========== ACCOUNT MANAGEMENT ==========")
	c.println("1. Create New Account")
	c.println("2. View All Accounts")
	c.println("3. Select Account")
	c.println("4. Delete Account")
	c.println("5. View Current Account Details")
	c.println("6. Back to Main Menu")
	c.println("=======================================")
	choice, ok := c.prompt("Select an option: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		c.createAccount()
	case "2":
		c.println(report.AccountList(c.finance.AllAccounts()))
	case "3":
		c.selectAccount()
	case "4":
		c.deleteAccount()
	case "5":
		c.currentAccount()
	case "6":
	default:
		c.println("Invalid option.")
	}
}

func (c *CLI) createAccount() {
	c.println("Select Account Type:")
	c.println("1. Savings (3% interest)")
	c.println("2. Checking (1% interest)")
	c.println("3. Investment (Custom interest)")
	choice, ok := c.prompt("")
	if !ok {
		return
	}
	var accountType ledger.AccountType
	switch choice {
	case "1":
		accountType = ledger.SavingsAccount()
	case "2":
		accountType = ledger.CheckingAccount()
	case "3":
		raw, ok := c.prompt("Enter annual interest rate (e.g., 0.05 for 5%): ")
		if !ok {
			return
		}
		rate, err := money.Parse(raw)
		if err != nil {
			c.println("Invalid rate.")
			return
		}
		accountType, err = ledger.InvestmentAccount(rate)
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
	default:
		c.println("Invalid type. Creating Checking account by default.")
		accountType = ledger.CheckingAccount()
	}
	account := c.finance.CreateAccount(accountType)
	c.println("Account created successfully!")
	c.printf("Account Number: %s\n", account.Number())
	c.printf("Type: %s\n", account.Type())
}

func (c *CLI) selectAccount() {
	number, ok := c.promptAccountNumber("Enter account number: ")
	if !ok {
		return
	}
	if c.finance.SelectAccount(number) {
		c.printf("Account %s selected.\n", number)
		return
	}
	c.println("Account not found.")
}

func (c *CLI) deleteAccount() {
	number, ok := c.promptAccountNumber("Enter account number to delete: ")
	if !ok {
		return
	}
	if c.finance.DeleteAccount(number) {
		c.println("Account deleted successfully.")
		return
	}
	c.println("Cannot delete account. Either it doesn't exist or has non-zero balance.")
}

func (c *CLI) currentAccount() {
	account, ok := c.finance.CurrentAccount()
	if !ok {
		c.println("No account selected. Please select an account first.")
		return
	}
	c.println(report.AccountDetails(account))
}

func (c *CLI) transactionMenu() {
	account, ok := c.finance.CurrentAccount()
	if !ok {
		c.println("Please select an account first!")
		return
	}
	c.println("")
	c.println("========== TRANSACTIONS ==========")
	c.printf("Current Account: %s\n", account.Number())
	c.printf("Balance: %s\n", money.Format(account.Balance()))
	c.println("")
	c.println("1. Deposit")
	c.println("2. Withdraw")
	c.println("3. Transfer")
	c.println("4. View Transaction History")
	c.println("5. Back to Main Menu")
	c.println("=================================")
	choice, ok := c.prompt("Select an option: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		c.deposit(account)
	case "2":
		c.withdraw(account)
	case "3":
		c.transfer()
	case "4":
		c.println(report.TransactionHistory(account.RecentTransactions(c.historySize)))
	case "5":
	default:
		c.println("Invalid option.")
	}
}

func (c *CLI) deposit(account *ledger.Account) {
	amount, ok := c.promptAmount("Enter amount to deposit: $")
	if !ok {
		return
	}
	description, ok := c.promptDescription(ledger.CategoryDeposit)
	if !ok {
		return
	}
	if _, err := c.finance.Deposit(account.Number(), amount, description); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Deposited %s successfully!\n", money.Format(amount))
	c.printf("New balance: %s\n", money.Format(account.Balance()))
}

func (c *CLI) withdraw(account *ledger.Account) {
	amount, ok := c.promptAmount("Enter amount to withdraw: $")
	if !ok {
		return
	}
	description, ok := c.promptDescription(ledger.CategoryWithdrawal)
	if !ok {
		return
	}
	done, err := c.finance.Withdraw(account.Number(), amount, description)
	switch {
	case err != nil:
		c.printf("Error: %v\n", err)
	case !done:
		c.println("Insufficient funds!")
	default:
		c.printf("Withdrew %s successfully!\n", money.Format(amount))
		c.printf("New balance: %s\n", money.Format(account.Balance()))
	}
}

func (c *CLI) transfer() {
	from, ok := c.prompt("Enter source account number: ")
	if !ok {
		return
	}
	to, ok := c.prompt("Enter destination account number: ")
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Enter amount to transfer: $")
	if !ok {
		return
	}
	done, err := c.finance.Transfer(from, to, amount)
	if err != nil || !done {
		c.println("Transfer failed. Check account numbers and balance.")
		return
	}
	c.println("Transfer completed successfully!")
}

func (c *CLI) budgetMenu() {
	c.println("")
	c.println("========== BUDGET MANAGEMENT ==========")
	c.println("1. Create Budget")
	c.println("2. Add Expense to Budget")
	c.println("3. View Budget Status")
	c.println("4. View All Budgets")
	c.println("5. Back to Main Menu")
	c.println("======================================")
	choice, ok := c.prompt("Select an option: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		c.createBudget()
	case "2":
		c.addExpense()
	case "3":
		c.budgetStatus()
	case "4":
		all := c.budgets.All()
		statuses := make([]budget.Status, 0, len(all))
		for _, b := range all {
			statuses = append(statuses, b.Status())
		}
		c.println(report.BudgetList(statuses))
	case "5":
	default:
		c.println("Invalid option.")
	}
}

func (c *CLI) createBudget() {
	category, ok := c.promptCategory("Enter budget category (e.g., Food, Transport): ")
	if !ok {
		return
	}
	raw, ok := c.prompt("Enter budget limit: $")
	if !ok {
		return
	}
	limit, err := money.ParsePositive(raw)
	if err != nil {
		c.println("Invalid limit.")
		return
	}
	if err := c.budgets.Create(category, limit); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Budget for '%s' created with limit %s\n", category, money.Format(limit))
}

func (c *CLI) addExpense() {
	category, ok := c.promptCategory("Enter budget category: ")
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Enter expense amount: $")
	if !ok {
		return
	}
	if c.budgets.AddExpense(category, amount) {
		c.println("Expense added to budget.")
		return
	}
	c.println("Budget not found or expense exceeds limit!")
}

func (c *CLI) budgetStatus() {
	category, ok := c.promptCategory("Enter budget category: ")
	if !ok {
		return
	}
	status, found := report.BudgetStatusReport(c.budgets, category)
	if !found {
		c.println("Budget not found.")
		return
	}
	c.println(status)
}

func (c *CLI) calculatorMenu() {
	c.println("")
	c.println("========== FINANCIAL CALCULATORS ==========")
	c.println("1. Loan Payment Calculator")
	c.println("2. Investment Future Value Calculator")
	c.println("3. Compound Interest Calculator")
	c.println("4. Back to Main Menu")
	c.println("==========================================")
	choice, ok := c.prompt("Select an option: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		c.loanCalculator()
	case "2":
		c.investmentCalculator()
	case "3":
		c.compoundCalculator()
	case "4":
	default:
		c.println("Invalid option.")
	}
}

func (c *CLI) loanCalculator() {
	principal, ok := c.promptDecimal("Enter loan principal: $")
	if !ok {
		return
	}
	rate, ok := c.promptDecimal("Enter annual interest rate (e.g., 0.05 for 5%): ")
	if !ok {
		return
	}
	years, ok := c.promptInt("Enter loan term in years: ")
	if !ok {
		return
	}
	summary, err := calc.Loan(principal, rate, years)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.println("")
	c.println(report.Loan(summary))
}

func (c *CLI) investmentCalculator() {
	principal, ok := c.promptDecimal("Enter initial investment: $")
	if !ok {
		return
	}
	rate, ok := c.promptDecimal("Enter expected annual return rate (e.g., 0.07 for 7%): ")
	if !ok {
		return
	}
	years, ok := c.promptInt("Enter investment period in years: ")
	if !ok {
		return
	}
	raw, ok := c.prompt("Enter monthly contribution (0 for none): $")
	if !ok {
		return
	}
	monthly, err := money.Parse(raw)
	if err != nil {
		monthly = decimal.Zero
	}
	projection, err := calc.Investment(principal, rate, years, monthly)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.println("")
	c.println(report.Investment(projection))
}

func (c *CLI) compoundCalculator() {
	principal, ok := c.promptDecimal("Enter principal amount: $")
	if !ok {
		return
	}
	rate, ok := c.promptDecimal("Enter annual interest rate (e.g., 0.05 for 5%): ")
	if !ok {
		return
	}
	years, ok := c.promptInt("Enter time period in years: ")
	if !ok {
		return
	}
	raw, ok := c.prompt("Enter compound frequency per year (12 for monthly): ")
	if !ok {
		return
	}
	frequency, err := strconv.Atoi(raw)
	if err != nil {
		frequency = calc.DefaultCompoundFrequency
	}
	summary, err := calc.Compound(principal, rate, years, frequency)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.println("")
	c.println(report.Compound(summary))
}

func (c *CLI) reportMenu() {
	c.println("")
	c.println("========== REPORTS & ANALYTICS ==========")
	c.println("1. Financial Summary Report")
	c.println("2. Account Performance")
	c.println("3. Budget Analysis")
	c.println("4. Back to Main Menu")
	c.println("========================================")
	choice, ok := c.prompt("Select an option: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		c.println(report.FinancialSummary(c.finance.Summary()))
	case "2":
		c.println(report.AccountPerformance(c.finance.Performance()))
	case "3":
		c.println(report.BudgetAnalysis(c.budgets.Analysis()))
	case "4":
	default:
		c.println("Invalid option.")
	}
}
