package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal returns true if stdout is a terminal (TTY).
// Uses go-isatty for cross-platform detection including Windows ConPTY.
func IsTerminal() bool {
	return isTerminalFd(os.Stdout.Fd())
}

// IsInputTerminal returns true if stdin is a terminal, i.e. prompts can be answered.
func IsInputTerminal() bool {
	return isTerminalFd(os.Stdin.Fd())
}

func isTerminalFd(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
