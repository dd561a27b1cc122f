// Package errors provides the error taxonomy of script-sleuth.
// Every failure the CLI can end with is a *SleuthError carrying the
// process exit code it maps to.
package errors

import (
	"errors"
	"fmt"

	"github.com/scriptsleuth/script-sleuth/internal/i18n"
)

// Kind identifies the class of a failure
type Kind int

const (
	// KindManifestUnavailable means package.json is missing or unparsable
	KindManifestUnavailable Kind = iota
	// KindNoScripts means the manifest has no runnable scripts
	KindNoScripts
	// KindEmptySelection means the selection produced no script name
	KindEmptySelection
	// KindSelectionCancelled means the user aborted the prompt
	KindSelectionCancelled
	// KindUnknownScript means a script named on the command line does not exist
	KindUnknownScript
	// KindChildProcess means the runner could not be spawned or exited non-zero
	KindChildProcess
	// KindConfig means the configuration could not be loaded or is invalid
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindManifestUnavailable:
		return "manifest unavailable"
	case KindNoScripts:
		return "no scripts"
	case KindEmptySelection:
		return "empty selection"
	case KindSelectionCancelled:
		return "selection cancelled"
	case KindUnknownScript:
		return "unknown script"
	case KindChildProcess:
		return "child process"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// SleuthError is the error type returned by all CLI operations
type SleuthError struct {
	Kind    Kind
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
	Code    int    // Process exit code
}

func (e *SleuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *SleuthError) Unwrap() error {
	return e.Err
}

// New creates a new error exiting with status 1
func New(kind Kind, op, message string, err error) *SleuthError {
	return &SleuthError{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
		Code:    1,
	}
}

// KindOf returns the kind of err and whether err is a *SleuthError
func KindOf(err error) (Kind, bool) {
	var sErr *SleuthError
	if errors.As(err, &sErr) {
		return sErr.Kind, true
	}
	return 0, false
}

// Is reports whether err is a *SleuthError of the given kind
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// ExitCode maps an error to the process exit status.
// nil is success; errors that are not a *SleuthError exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var sErr *SleuthError
	if errors.As(err, &sErr) && sErr.Code != 0 {
		return sErr.Code
	}
	return 1
}

// IsSilent reports whether the error should end the process without a
// diagnostic beyond what was already shown. Cancellation and a child that
// already reported its own failure are silent.
func IsSilent(err error) bool {
	k, ok := KindOf(err)
	if !ok {
		return false
	}
	if k == KindSelectionCancelled {
		return true
	}
	var sErr *SleuthError
	return k == KindChildProcess && errors.As(err, &sErr) && sErr.Err == nil
}

// Common error constructors for specific scenarios

// ErrManifestUnavailable creates an error for a missing or invalid manifest
func ErrManifestUnavailable(err error) *SleuthError {
	return New(KindManifestUnavailable, i18n.ErrOpManifest, i18n.ErrMsgNoManifest, err)
}

// ErrNoScripts creates an error for a manifest without scripts
func ErrNoScripts(path string) *SleuthError {
	return New(KindNoScripts, i18n.ErrOpManifest, fmt.Sprintf(i18n.MsgNoScripts, path), nil)
}

// ErrEmptySelection creates an error for a selection that yielded no name
func ErrEmptySelection() *SleuthError {
	return New(KindEmptySelection, i18n.ErrOpSelect, i18n.ErrMsgEmptySelection, nil)
}

// ErrSelectionCancelled creates an error for an aborted prompt
func ErrSelectionCancelled() *SleuthError {
	return New(KindSelectionCancelled, i18n.ErrOpSelect, i18n.MsgCancelled, nil)
}

// ErrUnknownScript creates an error for a script missing from the manifest
func ErrUnknownScript(name string) *SleuthError {
	return New(KindUnknownScript, i18n.ErrOpRun, fmt.Sprintf(i18n.ErrMsgUnknownScript, name), nil)
}

// ErrSpawn creates an error for a runner that could not be started
func ErrSpawn(command string, err error) *SleuthError {
	return New(KindChildProcess, i18n.ErrOpRun, fmt.Sprintf(i18n.ErrMsgSpawnFailed, command), err)
}

// ErrChildExit creates an error mirroring a non-zero child exit code
func ErrChildExit(command string, code int) *SleuthError {
	e := New(KindChildProcess, i18n.ErrOpRun, fmt.Sprintf(i18n.ErrMsgChildFailed, command, code), nil)
	if code > 0 {
		e.Code = code
	}
	return e
}

// ErrConfig creates an error for configuration failures
func ErrConfig(err error) *SleuthError {
	return New(KindConfig, i18n.ErrOpConfig, i18n.ErrMsgLoadConfigFailed, err)
}
