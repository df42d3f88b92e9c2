package bankxterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxLineLen bounds a single line of console input. Longer lines are
// discarded and treated as invalid input.
const maxLineLen = 4096

var errLineTooLong = errors.New("input line too long")

// Prompter reads validated user input one line at a time. Its methods only
// return an error once input is exhausted or unreadable.
type Prompter struct {
	rdr *bufio.Reader
	out io.Writer
	log *zerolog.Logger
}

func NewPrompter(in io.Reader, out io.Writer, log *zerolog.Logger) *Prompter {
	return &Prompter{
		rdr: bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Amount keeps asking until a strictly positive decimal is entered.
func (p *Prompter) Amount() (decimal.Decimal, error) {
	for {
		fmt.Fprint(p.out, "\n[Amount]: ")
		line, err := p.readLine()
		if err != nil && !errors.Is(err, errLineTooLong) {
			return decimal.Zero, err
		}
		amt, err := decimal.NewFromString(line)
		if err != nil || !amt.IsPositive() {
			p.log.Debug().Str("input", line).Msg("rejected amount input")
			fmt.Fprintln(p.out, "\n> Invalid input. Please enter a positive number.")
			fmt.Fprintln(p.out, separator)
			continue
		}
		return amt, nil
	}
}

// Choice keeps asking until an integer within [min, max] is entered.
func (p *Prompter) Choice(min, max int) (int, error) {
	for {
		fmt.Fprint(p.out, "\n[Choice]: ")
		line, err := p.readLine()
		if err != nil && !errors.Is(err, errLineTooLong) {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < min || n > max {
			p.log.Debug().Str("input", line).Int("min", min).Int("max", max).Msg("rejected menu choice")
			fmt.Fprintln(p.out, "> Invalid choice. Please try again.")
			fmt.Fprintln(p.out, separator)
			continue
		}
		return n, nil
	}
}

// Pause waits for the user to press Enter.
func (p *Prompter) Pause() error {
	fmt.Fprintln(p.out, "\nPress Enter to continue...")
	if _, err := p.readLine(); err != nil && !errors.Is(err, errLineTooLong) {
		return err
	}
	return nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLen is consumed whole and reported as errLineTooLong.
func (p *Prompter) readLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := p.rdr.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.log.Err(err).Msg("error reading console input")
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLen {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		p.log.Debug().Msg("discarded oversized input line")
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(buf)), nil
}
