package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	sleutherrors "github.com/scriptsleuth/script-sleuth/internal/errors"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		script     string
		wantString string
		wantProg   string
		wantArgs   []string
		wantErr    bool
	}{
		{
			name:       "default prefix",
			prefix:     "",
			script:     "build",
			wantString: "npm run build",
			wantProg:   "npm",
			wantArgs:   []string{"run", "build"},
		},
		{
			name:       "yarn prefix",
			prefix:     "yarn",
			script:     "test",
			wantString: "yarn run test",
			wantProg:   "yarn",
			wantArgs:   []string{"run", "test"},
		},
		{
			name:       "prefix with its own flags",
			prefix:     "pnpm --silent",
			script:     "lint",
			wantString: "pnpm --silent run lint",
			wantProg:   "pnpm",
			wantArgs:   []string{"--silent", "run", "lint"},
		},
		{
			name:       "extra whitespace collapses",
			prefix:     "  bun ",
			script:     "dev",
			wantString: "bun run dev",
			wantProg:   "bun",
			wantArgs:   []string{"run", "dev"},
		},
		{
			name:       "script names with colons",
			prefix:     "npm",
			script:     "test:unit",
			wantString: "npm run test:unit",
			wantProg:   "npm",
			wantArgs:   []string{"run", "test:unit"},
		},
		{
			name:    "empty script name",
			prefix:  "npm",
			script:  "",
			wantErr: true,
		},
		{
			name:    "blank script name",
			prefix:  "npm",
			script:  "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Build(tt.prefix, tt.script)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyScriptName) {
					t.Errorf("Build() error = %v, want ErrEmptyScriptName", err)
				}
				return
			}
			if inv.String() != tt.wantString {
				t.Errorf("String() = %q, want %q", inv.String(), tt.wantString)
			}
			if inv.Program != tt.wantProg {
				t.Errorf("Program = %q, want %q", inv.Program, tt.wantProg)
			}
			if !reflect.DeepEqual(inv.Args, tt.wantArgs) {
				t.Errorf("Args = %v, want %v", inv.Args, tt.wantArgs)
			}
		})
	}
}

// TestRunner_helper is run as a subprocess standing in for the package manager.
// GO_TEST_HELPER selects its behavior.
func TestRunner_helper(t *testing.T) {
	switch os.Getenv("GO_TEST_HELPER") {
	case "exit_0":
		fmt.Fprint(os.Stdout, "helper stdout")
		os.Exit(0)
	case "exit_3":
		fmt.Fprint(os.Stderr, "helper stderr")
		os.Exit(3)
	case "echo_stdin":
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(os.Stdin)
		fmt.Fprint(os.Stdout, strings.ToUpper(buf.String()))
		os.Exit(0)
	case "pwd":
		wd, _ := os.Getwd()
		fmt.Fprint(os.Stdout, wd)
		os.Exit(0)
	}
}

func helperInvocation() Invocation {
	return Invocation{Program: os.Args[0], Args: []string{"-test.run=^TestRunner_helper$"}}
}

func helperRunner(mode string, stdin string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := New()
	r.Stdin = strings.NewReader(stdin)
	r.Stdout = &stdout
	r.Stderr = &stderr
	r.Env = append(os.Environ(), "GO_TEST_HELPER="+mode)
	return r, &stdout, &stderr
}

func TestRunner_Run_ExitZero(t *testing.T) {
	if os.Getenv("GO_TEST_HELPER") != "" {
		return
	}

	r, stdout, _ := helperRunner("exit_0", "")
	code, err := r.Run(context.Background(), helperInvocation())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 0 {
		t.Errorf("Run() code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "helper stdout") {
		t.Errorf("stdout = %q, want child output", stdout.String())
	}
}

func TestRunner_Run_MirrorsExitCode(t *testing.T) {
	if os.Getenv("GO_TEST_HELPER") != "" {
		return
	}

	r, _, stderr := helperRunner("exit_3", "")
	code, err := r.Run(context.Background(), helperInvocation())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 3 {
		t.Errorf("Run() code = %d, want 3", code)
	}
	if !strings.Contains(stderr.String(), "helper stderr") {
		t.Errorf("stderr = %q, want child output", stderr.String())
	}
}

func TestRunner_Run_ForwardsStdin(t *testing.T) {
	if os.Getenv("GO_TEST_HELPER") != "" {
		return
	}

	r, stdout, _ := helperRunner("echo_stdin", "shout")
	if _, err := r.Run(context.Background(), helperInvocation()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "SHOUT") {
		t.Errorf("stdout = %q, want stdin echoed upper-cased", stdout.String())
	}
}

func TestRunner_Run_Dir(t *testing.T) {
	if os.Getenv("GO_TEST_HELPER") != "" {
		return
	}

	dir := t.TempDir()
	r, stdout, _ := helperRunner("pwd", "")
	r.Dir = dir
	if _, err := r.Run(context.Background(), helperInvocation()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasSuffix(stdout.String(), filepath.Base(dir)) {
		t.Errorf("child working directory = %q, want %q", stdout.String(), dir)
	}
}

func TestRunner_Run_SpawnFailure(t *testing.T) {
	r, _, _ := helperRunner("", "")
	inv := Invocation{Program: "script-sleuth-definitely-missing-12345", Args: []string{"run", "build"}}

	code, err := r.Run(context.Background(), inv)
	if err == nil {
		t.Fatal("Run() should fail for a missing program")
	}
	if code == 0 {
		t.Error("Run() code should be non-zero on spawn failure")
	}
	if !sleutherrors.Is(err, sleutherrors.KindChildProcess) {
		t.Errorf("Run() error = %v, want KindChildProcess", err)
	}
}

func TestRunner_Run_DryRun(t *testing.T) {
	r, stdout, _ := helperRunner("", "")
	r.SetDryRun(true)

	inv, err := Build("yarn", "test")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	code, err := r.Run(context.Background(), inv)
	if err != nil || code != 0 {
		t.Fatalf("Run() = (%d, %v), want (0, nil)", code, err)
	}
	if got := stdout.String(); got != "[DRY RUN] yarn run test\n" {
		t.Errorf("stdout = %q", got)
	}
}
