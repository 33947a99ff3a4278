package cli

import (
	"fmt"
	"strconv"
	"strings"

	"fintrack/internal/money"
	"fintrack/internal/validator"

	"github.com/shopspring/decimal"
)

// readLines feeds c.lines until input ends or done is closed. The scanner
// error is set before c.lines is closed.
func (c *CLI) readLines(done <-chan struct{}) {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- c.in.Text():
		case <-done:
			return
		}
	}
	c.readErr = c.in.Err()
}

// prompt returns false once input is exhausted or the run context is done.
func (c *CLI) prompt(label string) (string, bool) {
	if label != "" {
		fmt.Fprint(c.out, label)
	}
	var raw string
	select {
	case <-c.ctx.Done():
		return "", false
	case line, ok := <-c.lines:
		if !ok {
			return "", false
		}
		raw = line
	}
	line := strings.TrimSpace(raw)
	c.logger.Debug().Str("prompt", strings.TrimSpace(label)).Msg("input read")
	return line, true
}

func (c *CLI) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := money.ParsePositive(raw)
	if err != nil {
		c.println("Invalid amount.")
		return decimal.Zero, false
	}
	return amount, true
}

func (c *CLI) promptDecimal(label string) (decimal.Decimal, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	value, err := money.Parse(raw)
	if err != nil {
		c.println("Invalid number.")
		return decimal.Zero, false
	}
	return value, true
}

func (c *CLI) promptInt(label string) (int, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.println("Invalid number.")
		return 0, false
	}
	return value, true
}

func (c *CLI) promptAccountNumber(label string) (string, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return "", false
	}
	number := strings.ToUpper(raw)
	if err := validator.ValidateAccountNumber(number); err != nil {
		c.println("Account not found.")
		return "", false
	}
	return number, true
}

func (c *CLI) promptCategory(label string) (string, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return "", false
	}
	if err := validator.ValidateCategory(raw); err != nil {
		c.println("Invalid category.")
		return "", false
	}
	return raw, true
}

// promptDescription falls back to fallback when the line is blank.
func (c *CLI) promptDescription(fallback string) (string, bool) {
	raw, ok := c.prompt("Enter description: ")
	if !ok {
		return "", false
	}
	if raw == "" {
		return fallback, true
	}
	if err := validator.ValidateDescription(raw); err != nil {
		c.println("Invalid description.")
		return "", false
	}
	return raw, true
}

func (c *CLI) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
