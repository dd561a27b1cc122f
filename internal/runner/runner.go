// Package runner builds and spawns the "<prefix> run <script>" invocation
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	sleutherrors "github.com/scriptsleuth/script-sleuth/internal/errors"
	"github.com/scriptsleuth/script-sleuth/internal/i18n"
	"github.com/scriptsleuth/script-sleuth/internal/logging"
)

// DefaultPrefix is used when Build gets an empty prefix
const DefaultPrefix = "npm"

// ErrEmptyScriptName is returned by Build for an empty script name
var ErrEmptyScriptName = errors.New("empty script name")

// Invocation is a program with its arguments
type Invocation struct {
	Program string
	Args    []string
}

// Build returns the invocation for "<prefix> run <name>", split on whitespace.
// A prefix may carry its own arguments, e.g. "pnpm --silent".
func Build(prefix, name string) (Invocation, error) {
	if strings.TrimSpace(name) == "" {
		return Invocation{}, ErrEmptyScriptName
	}
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}

	fields := strings.Fields(fmt.Sprintf("%s run %s", prefix, name))
	return Invocation{
		Program: fields[0],
		Args:    fields[1:],
	}, nil
}

// String returns the command line of the invocation
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Program}, i.Args...), " ")
}

// Runner spawns invocations attached to its streams
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string   // working directory, empty means current
	Env    []string // nil means inherit
	DryRun bool
	Logger *log.Logger
}

// New creates a runner attached to the process streams
func New() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logging.Discard(),
	}
}

// SetDryRun enables/disables dry run mode
func (r *Runner) SetDryRun(dryRun bool) {
	r.DryRun = dryRun
}

// Run spawns inv, waits for it, and returns its exit code.
// The error is non-nil only when the program could not be started.
func (r *Runner) Run(ctx context.Context, inv Invocation) (int, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	if r.DryRun {
		fmt.Fprintf(r.Stdout, i18n.MsgDryRun+"\n", inv.String())
		return 0, nil
	}

	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Dir = r.Dir
	cmd.Env = r.Env

	// The terminal delivers interrupts to the child as well; stay alive to
	// report its exit status.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	logger.Debug("spawning", "program", inv.Program, "args", inv.Args, "dir", r.Dir)
	if err := cmd.Start(); err != nil {
		return 1, sleutherrors.ErrSpawn(inv.String(), err)
	}

	err := cmd.Wait()
	code := exitCode(cmd, err)
	logger.Debug("child exited", "code", code)

	if err != nil && code == 0 {
		// Wait failed without an exit status, e.g. a stream copy error.
		return 1, sleutherrors.ErrSpawn(inv.String(), err)
	}
	return code, nil
}

// exitCode extracts the child's exit status. A child killed by a signal
// reports 128+signal, the shell convention.
func exitCode(cmd *exec.Cmd, err error) int {
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return 0
	}
	state := cmd.ProcessState
	if state == nil {
		return 1
	}
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
