package bankxterm_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arhyth/bankxterm"
	"github.com/arhyth/bankxterm/mocks"
)

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func newTestConsole(tt *testing.T, in io.Reader, slipDir string) (*bankxterm.Console, *bytes.Buffer) {
	tt.Helper()
	repo := newTestRepo()
	svc, err := bankxterm.NewService(repo, testLogger())
	require.Nil(tt, err)
	out := &bytes.Buffer{}
	v := bankxterm.NewValidationMiddleware(repo)(svc)
	return bankxterm.NewConsole(v, in, out, bankxterm.NopClearer{}, slipDir, testLogger()), out
}

func TestConsoleRun(t *testing.T) {
	t.Run("exits from the main menu", func(tt *testing.T) {
		as := assert.New(tt)
		c, out := newTestConsole(tt, script("3"), tt.TempDir())
		as.Nil(c.Run())
		as.Contains(out.String(), "Main Menu")
		as.Contains(out.String(), "Terminating the program...")
	})

	t.Run("treats end of input as exit", func(tt *testing.T) {
		as := assert.New(tt)
		c, out := newTestConsole(tt, strings.NewReader(""), tt.TempDir())
		as.Nil(c.Run())
		as.Contains(out.String(), "Terminating the program...")
	})

	t.Run("savings deposit then failed and successful withdrawals", func(tt *testing.T) {
		as := assert.New(tt)
		in := script(
			"1",   // savings
			"1",   // deposit
			"500", // amount
			"2",   // back
			"2",   // withdraw
			"600", // rejected
			"1",   // another
			"500", // accepted
			"2",   // back
			"3",   // check balance
			"",    // continue
			"5",   // main menu
			"3",   // exit
		)
		c, out := newTestConsole(tt, in, tt.TempDir())
		as.Nil(c.Run())

		got := out.String()
		as.Contains(got, "Savings Account Menu")
		as.Contains(got, "Currently performing Deposit in: Savings Account")
		as.Contains(got, "> Current Balance: 1000")
		as.Contains(got, "> Your Savings account balance is: 1500")
		as.Contains(got, "Insufficient balance! Withdrawals would reduce your balance below the minimum allowed of 1000!")
		as.Contains(got, "> Your Savings account balance is: 1000")
		as.Contains(got, "> Your recent savings account balance is: 1000")
		as.Contains(got, "Returning to main menu...")
	})

	t.Run("current account rejects overdraft", func(tt *testing.T) {
		as := assert.New(tt)
		in := script("2", "2", "10", "2", "1", "200", "2", "2", "200", "2", "3", "", "5", "3")
		c, out := newTestConsole(tt, in, tt.TempDir())
		as.Nil(c.Run())

		got := out.String()
		as.Contains(got, "Insufficient balance!\n")
		as.Contains(got, "> Your Current account balance is: 200")
		as.Contains(got, "> Your Current account balance is: 0")
		as.Contains(got, "> Your recent current account balance is: 0")
		as.NotContains(got, "current current")
	})

	t.Run("ignores an oversized input line", func(tt *testing.T) {
		as := assert.New(tt)
		c, out := newTestConsole(tt, script(strings.Repeat("7", 70000), "3"), tt.TempDir())
		as.Nil(c.Run())
		as.Contains(out.String(), "> Invalid choice. Please try again.")
		as.Contains(out.String(), "Terminating the program...")
	})

	t.Run("re-prompts on invalid choices and amounts", func(tt *testing.T) {
		as := assert.New(tt)
		in := script("9", "abc", "2", "1", "-5", "0", "ten", "25", "2", "5", "3")
		c, out := newTestConsole(tt, in, tt.TempDir())
		as.Nil(c.Run())

		got := out.String()
		as.Equal(2, strings.Count(got, "> Invalid choice. Please try again."))
		as.Equal(3, strings.Count(got, "> Invalid input. Please enter a positive number."))
		as.Contains(got, "> Your Current account balance is: 25")
	})

	t.Run("prints a balance slip into the slip directory", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		dir := tt.TempDir()
		c, out := newTestConsole(tt, script("1", "4", "", "5", "3"), dir)
		reqrd.Nil(c.Run())

		matches, err := filepath.Glob(filepath.Join(dir, "savings-slip-*.pdf"))
		reqrd.Nil(err)
		reqrd.Len(matches, 1)
		as.Contains(out.String(), "> Balance slip written to "+matches[0])
		bits, err := os.ReadFile(matches[0])
		reqrd.Nil(err)
		as.True(bytes.HasPrefix(bits, []byte("%PDF-")))
	})

	t.Run("keeps every slip printed in quick succession", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		dir := tt.TempDir()
		c, _ := newTestConsole(tt, script("1", "4", "", "4", "", "4", "", "5", "3"), dir)
		reqrd.Nil(c.Run())

		matches, err := filepath.Glob(filepath.Join(dir, "savings-slip-*.pdf"))
		reqrd.Nil(err)
		as.Len(matches, 3)
	})

	t.Run("reports slip failures and keeps running", func(tt *testing.T) {
		as := assert.New(tt)
		missing := filepath.Join(tt.TempDir(), "does", "not", "exist")
		c, out := newTestConsole(tt, script("2", "4", "", "5", "3"), missing)
		as.Nil(c.Run())
		as.Contains(out.String(), "> Could not write balance slip:")
		as.Contains(out.String(), "Terminating the program...")
	})
}

func TestConsoleWithMockService(t *testing.T) {
	t.Run("clears the screen before each menu", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		clr := mocks.NewMockClearer(ctrl)
		clr.EXPECT().Clear().Times(3)
		c := bankxterm.NewConsole(svc, script("1", "5", "3"), &bytes.Buffer{}, clr, ".", testLogger())
		as.Nil(c.Run())
	})

	t.Run("passes the entered amount to the service", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		bal := decimal.NewFromInt(1000)
		after := decimal.RequireFromString("1012.5")
		svc.EXPECT().
			Balance(bankxterm.BalanceReq{Kind: bankxterm.Savings}).
			Return(&bal, nil)
		svc.EXPECT().
			Deposit(gomock.AssignableToTypeOf(bankxterm.ChargeReq{})).
			DoAndReturn(func(r bankxterm.ChargeReq) (*decimal.Decimal, error) {
				as.Equal(bankxterm.Savings, r.Kind)
				as.Equal("12.5", r.Amount.String())
				return &after, nil
			}).
			Times(1)
		out := &bytes.Buffer{}
		c := bankxterm.NewConsole(svc, script("1", "1", "12.5", "2", "5", "3"), out, bankxterm.NopClearer{}, ".", testLogger())
		as.Nil(c.Run())
		as.Contains(out.String(), "> Your Savings account balance is: 1012.5")
	})

	t.Run("reports unexpected service errors without stopping", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			Balance(bankxterm.BalanceReq{Kind: bankxterm.Current}).
			Return(nil, errors.New("ledger offline"))
		out := &bytes.Buffer{}
		c := bankxterm.NewConsole(svc, script("2", "3", "", "5", "3"), out, bankxterm.NopClearer{}, ".", testLogger())
		as.Nil(c.Run())
		as.Contains(out.String(), "Transaction failed: ledger offline")
		as.Contains(out.String(), "Terminating the program...")
	})
}
