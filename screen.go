package bankxterm

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const ansiClearScreen = "\033[H\033[2J"

// Clearer wipes the console between menu screens.
type Clearer interface {
	Clear()
}

// NewClearer emits ANSI clear sequences when f is a terminal and does nothing
// otherwise, so piped transcripts stay readable.
func NewClearer(f *os.File) Clearer {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return &ansiClearer{w: f}
	}
	return NopClearer{}
}

type ansiClearer struct {
	w io.Writer
}

func (a *ansiClearer) Clear() {
	fmt.Fprint(a.w, ansiClearScreen)
}

type NopClearer struct{}

func (NopClearer) Clear() {}
