package bankxterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	headerWidth = 40
	separator   = "----------------------------------------"

	maxSlipsPerSecond = 1000
)

// chargeFunc is a balance-changing operation, e.g. Service.Deposit.
type chargeFunc func(ChargeReq) (*decimal.Decimal, error)

// Console drives the text menus on top of a Service.
type Console struct {
	Svc     Service
	Log     *zerolog.Logger
	SlipDir string

	prompt *Prompter
	out    io.Writer
	clr    Clearer
	now    func() time.Time
}

func NewConsole(svc Service, in io.Reader, out io.Writer, clr Clearer, slipDir string, log *zerolog.Logger) *Console {
	return &Console{
		Svc:     svc,
		Log:     log,
		SlipDir: slipDir,
		prompt:  NewPrompter(in, out, log),
		out:     out,
		clr:     clr,
		now:     time.Now,
	}
}

// Run shows the main menu until the user exits or input runs out. It returns
// an error only when input cannot be read.
func (c *Console) Run() error {
	for {
		c.showMainMenu()
		choice, err := c.prompt.Choice(1, 3)
		if err != nil {
			return c.terminate(err)
		}
		switch choice {
		case 1:
			err = c.handleAccount(Savings)
		case 2:
			err = c.handleAccount(Current)
		case 3:
			fmt.Fprintln(c.out, "Terminating the program...")
			return nil
		}
		if err != nil {
			return c.terminate(err)
		}
	}
}

func (c *Console) terminate(err error) error {
	if errors.Is(err, io.EOF) {
		c.Log.Info().Msg("console input closed")
		fmt.Fprintln(c.out, "\nTerminating the program...")
		return nil
	}
	return err
}

func (c *Console) showMainMenu() {
	c.clr.Clear()
	c.printHeader("Main Menu")
	fmt.Fprintln(c.out, "1 - Savings Account")
	fmt.Fprintln(c.out, "2 - Current Account")
	fmt.Fprintln(c.out, "3 - Exit")
}

func (c *Console) showAccountMenu(kind AccountKind) {
	c.clr.Clear()
	c.printHeader(kind.Title() + " Account Menu")
	fmt.Fprintln(c.out, "1 - Deposit")
	fmt.Fprintln(c.out, "2 - Withdraw")
	fmt.Fprintln(c.out, "3 - Check Balance")
	fmt.Fprintln(c.out, "4 - Print Balance Slip")
	fmt.Fprintln(c.out, "5 - Back")
}

func (c *Console) handleAccount(kind AccountKind) error {
	for {
		c.showAccountMenu(kind)
		choice, err := c.prompt.Choice(1, 5)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = c.handleTransaction(kind, "Deposit", c.Svc.Deposit)
		case 2:
			err = c.handleTransaction(kind, "Withdrawal", c.Svc.Withdraw)
		case 3:
			err = c.handleCheckBalance(kind)
		case 4:
			err = c.handleStatement(kind)
		case 5:
			fmt.Fprintln(c.out, "Returning to main menu...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleTransaction collects an amount, applies charge, and offers to repeat
// the same operation until the user goes back.
func (c *Console) handleTransaction(kind AccountKind, action string, charge chargeFunc) error {
	c.clr.Clear()
	c.printHeader(action)
	fmt.Fprintf(c.out, "Currently performing %s in: %s Account\n", action, kind.Title())
	if bal, err := c.Svc.Balance(BalanceReq{Kind: kind}); err != nil {
		c.writeRejection(err)
	} else {
		fmt.Fprintf(c.out, "\n> Current Balance: %s\n", bal)
	}

	for {
		amt, err := c.prompt.Amount()
		if err != nil {
			return err
		}
		c.apply(kind, charge, amt)

		fmt.Fprintln(c.out, "\n> Choose from the following:")
		fmt.Fprintf(c.out, "1 - Make another %s\n", action)
		fmt.Fprintf(c.out, "2 - Go back to %s account menu\n", kind.Title())
		choice, err := c.prompt.Choice(1, 2)
		if err != nil {
			return err
		}
		if choice == 2 {
			return nil
		}
	}
}

func (c *Console) apply(kind AccountKind, charge chargeFunc, amt decimal.Decimal) {
	bal, err := charge(ChargeReq{Kind: kind, Amount: amt})
	if err != nil {
		c.writeRejection(err)
		return
	}
	fmt.Fprintln(c.out, separator)
	fmt.Fprintf(c.out, "> Your %s account balance is: %s\n", kind.Title(), bal)
}

func (c *Console) handleCheckBalance(kind AccountKind) error {
	c.clr.Clear()
	c.printHeader("Check Balance")
	bal, err := c.Svc.Balance(BalanceReq{Kind: kind})
	if err != nil {
		c.writeRejection(err)
	} else {
		fmt.Fprintf(c.out, "> Your recent %s account balance is: %s\n", kind, bal)
	}
	return c.prompt.Pause()
}

func (c *Console) handleStatement(kind AccountKind) error {
	c.clr.Clear()
	c.printHeader("Balance Slip")
	path, err := c.writeSlip(kind)
	if err != nil {
		c.Log.Err(err).Str("method", "statement").Str("dir", c.SlipDir).Msg("error writing balance slip")
		fmt.Fprintf(c.out, "> Could not write balance slip: %s\n", err.Error())
	} else {
		fmt.Fprintf(c.out, "> Balance slip written to %s\n", path)
	}
	return c.prompt.Pause()
}

func (c *Console) writeSlip(kind AccountKind) (string, error) {
	f, path, err := c.createSlipFile(kind)
	if err != nil {
		return "", err
	}
	if err = c.Svc.Statement(f, StatementReq{Kind: kind}); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	return path, f.Close()
}

// createSlipFile never reuses an existing name; slips issued within the same
// second get a numeric suffix.
func (c *Console) createSlipFile(kind AccountKind) (*os.File, string, error) {
	base := fmt.Sprintf("%s-slip-%s", kind, c.now().Format("20060102-150405"))
	for i := 0; i < maxSlipsPerSecond; i++ {
		name := base + ".pdf"
		if i > 0 {
			name = fmt.Sprintf("%s-%d.pdf", base, i)
		}
		path := filepath.Join(c.SlipDir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		return f, path, err
	}
	return nil, "", fmt.Errorf("too many balance slips for %s in one second", kind)
}

// writeRejection maps domain errors to user-facing text.
func (c *Console) writeRejection(err error) {
	var (
		errAmt  ErrInvalidAmount
		errFund ErrInsufficientFunds
		errNF   ErrNotFound
	)
	switch {
	case errors.As(err, &errAmt):
		fmt.Fprintln(c.out, "Invalid amount. Please enter a positive value!")
	case errors.As(err, &errFund):
		if errFund.Floor.IsZero() {
			fmt.Fprintln(c.out, "Insufficient balance!")
			return
		}
		fmt.Fprintf(c.out, "Insufficient balance! Withdrawals would reduce your balance below the minimum allowed of %s!\n", errFund.Floor)
	case errors.As(err, &errNF):
		fmt.Fprintf(c.out, "No %s account is open.\n", errNF.Kind)
	default:
		c.Log.Err(err).Msg("unexpected transaction error")
		fmt.Fprintf(c.out, "Transaction failed: %s\n", err.Error())
	}
}

func (c *Console) printHeader(title string) {
	padding := (headerWidth - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	rule := strings.Repeat("=", headerWidth)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, strings.Repeat(" ", padding)+title)
	fmt.Fprintln(c.out, rule)
}
