package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scriptsleuth/script-sleuth/internal/i18n"
)

// ErrNoOptions is returned by Select when there is nothing to choose from
var ErrNoOptions = errors.New(i18n.MsgNoOptions)

// Outcome is how a selection prompt ended
type Outcome int

const (
	// OutcomeConfirmed means the user picked an option
	OutcomeConfirmed Outcome = iota
	// OutcomeCancelled means the user aborted the prompt
	OutcomeCancelled
)

// Selection is the result of a selection prompt.
// Index is only meaningful when Outcome is OutcomeConfirmed.
type Selection struct {
	Outcome Outcome
	Index   int
}

// Confirmed reports whether an option was picked
func (s Selection) Confirmed() bool {
	return s.Outcome == OutcomeConfirmed
}

func confirmed(index int) Selection {
	return Selection{Outcome: OutcomeConfirmed, Index: index}
}

func cancelled() Selection {
	return Selection{Outcome: OutcomeCancelled, Index: -1}
}

// Prompt handles interactive user prompts
type Prompt struct {
	reader io.Reader
	writer io.Writer
}

// NewPrompt creates a new prompt handler
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{
		reader: r,
		writer: w,
	}
}

// Select asks the user to select from a list of options.
// When running in a TTY, uses an interactive list (bubbletea list-simple style);
// otherwise falls back to numbered prompt + scanner input.
func (p *Prompt) Select(question string, options []string) (Selection, error) {
	if len(options) == 0 {
		return cancelled(), ErrNoOptions
	}
	if input, output, ok := canUseTerminal(p.reader, p.writer); ok {
		return askSelectList(question, options, input, output)
	}
	return p.askSelectScanner(question, options)
}

func (p *Prompt) askSelectScanner(question string, options []string) (Selection, error) {
	fmt.Fprintf(p.writer, "%s %s\n", StyleInfo.Render("?"), question)
	for i, opt := range options {
		fmt.Fprintf(p.writer, "  %s %s\n", StyleMuted.Render(fmt.Sprintf("%d.", i+1)), opt)
	}
	fmt.Fprint(p.writer, StyleMuted.Render(fmt.Sprintf("  "+i18n.MsgSelectRange, len(options))))

	line, err := readLine(p.reader)
	if err != nil && !errors.Is(err, io.EOF) {
		return cancelled(), err
	}
	if errors.Is(err, io.EOF) && line == "" {
		// EOF (ctrl+d) is the non-interactive way to back out
		fmt.Fprintln(p.writer)
		return cancelled(), nil
	}

	answer := strings.TrimSpace(line)
	var choice int
	if _, err := fmt.Sscanf(answer, "%d", &choice); err == nil {
		if choice >= 1 && choice <= len(options) {
			return confirmed(choice - 1), nil
		}
	}
	return cancelled(), fmt.Errorf(i18n.MsgInvalidSelection, answer)
}

// readLine reads up to and including the next newline one byte at a time.
// Input past the newline stays unread for the script that runs next.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(sb.String(), "\r"), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			return sb.String(), err
		}
	}
}

// Print helpers

// PrintHeader prints a styled header
func PrintHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", StyleError.Render("✗"), message)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", StyleWarning.Render("!"), message)
}
