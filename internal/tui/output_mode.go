package tui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is uncoloured text suitable for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is coloured, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive is the full-screen TUI.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

const defaultTerminalWidth = 80

// terminalEnv captures what DetectOutputMode looks at.
type terminalEnv struct {
	stdinTTY  bool
	stdoutTTY bool
	noColor   bool
	asciiOnly bool
}

// DetectOutputMode picks an output mode for the current process.
// forcePlain wins over everything; noColor downgrades to plain.
func DetectOutputMode(forcePlain, noColor bool) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	env := terminalEnv{
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		noColor:   noColor || termenv.EnvNoColor(),
		asciiOnly: termenv.EnvColorProfile() == termenv.Ascii,
	}
	return detectOutputMode(env)
}

func detectOutputMode(env terminalEnv) OutputMode {
	switch {
	case !env.stdoutTTY:
		return OutputModePlain
	case env.noColor || env.asciiOnly:
		return OutputModePlain
	case env.stdinTTY:
		return OutputModeInteractive
	default:
		return OutputModeStyled
	}
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
