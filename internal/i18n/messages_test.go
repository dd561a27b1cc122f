package i18n

import (
	"fmt"
	"strings"
	"testing"
)

// TestMessagesNotEmpty ensures that all message constants are non-empty.
// This helps catch typos or incomplete message definitions.
func TestMessagesNotEmpty(t *testing.T) {
	messages := map[string]string{
		"MsgCancelled":       MsgCancelled,
		"MsgSelectScript":    MsgSelectScript,
		"CmdRootShort":       CmdRootShort,
		"CmdRootLong":        CmdRootLong,
		"CmdCompletionShort": CmdCompletionShort,
		"FlagPrefix":         FlagPrefix,
		"FlagList":           FlagList,
		"FlagVersion":        FlagVersion,
		"MsgUsingPrefix":     MsgUsingPrefix,
		"MsgRunning":         MsgRunning,
	}

	for name, value := range messages {
		if value == "" {
			t.Errorf("Message constant %s is empty", name)
		}
	}
}

// TestErrorMessagesNotEmpty ensures that error message constants are non-empty.
func TestErrorMessagesNotEmpty(t *testing.T) {
	messages := map[string]string{
		"ErrOpManifest":          ErrOpManifest,
		"ErrOpSelect":            ErrOpSelect,
		"ErrOpRun":               ErrOpRun,
		"ErrOpConfig":            ErrOpConfig,
		"ErrMsgNoManifest":       ErrMsgNoManifest,
		"ErrMsgEmptySelection":   ErrMsgEmptySelection,
		"ErrMsgUnknownScript":    ErrMsgUnknownScript,
		"ErrMsgSpawnFailed":      ErrMsgSpawnFailed,
		"ErrMsgChildFailed":      ErrMsgChildFailed,
		"ErrMsgLoadConfigFailed": ErrMsgLoadConfigFailed,
	}

	for name, value := range messages {
		if value == "" {
			t.Errorf("Error message constant %s is empty", name)
		}
	}
}

// TestFormatMessages checks that format strings take the arguments callers pass.
func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"using prefix", MsgUsingPrefix, []any{"yarn"}, "Using yarn to run scripts"},
		{"running", MsgRunning, []any{"npm run build"}, "Running npm run build"},
		{"select range", MsgSelectRange, []any{3}, "Select (1-3): "},
		{"child failed", ErrMsgChildFailed, []any{"npm run test", 3}, "npm run test exited with code 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf(tt.format, tt.args...)
			if got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
			}
			if strings.Contains(got, "%!") {
				t.Errorf("format %q has mismatched verbs: %q", tt.format, got)
			}
		})
	}
}
