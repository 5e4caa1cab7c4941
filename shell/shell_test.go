// SPDX-License-Identifier: EPL-2.0

package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	t.Parallel()
	requireSh(t)

	res, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Stdout != "out\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "out\n")
	}
	if res.Stderr != "err\n" {
		t.Errorf("Stderr = %q, want %q", res.Stderr, "err\n")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestExecRunner_Env(t *testing.T) {
	t.Parallel()
	requireSh(t)

	r := ExecRunner{Env: []string{"PIN=1234"}}
	res, err := r.Run(context.Background(), "sh", "-c", "printf %s \"$PIN\"")
	if err != nil {
		t.Fatal(err)
	}
	if res.Stdout != "1234" {
		t.Errorf("Stdout = %q, want 1234", res.Stdout)
	}
}

func TestExecRunner_NotFound(t *testing.T) {
	t.Parallel()

	_, err := ExecRunner{}.Run(context.Background(), "definitely-not-a-real-binary-jaguarbsp")
	if err == nil {
		t.Fatal("Run() error = nil, want error for missing binary")
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	t.Parallel()
	requireSh(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := ExecRunner{}.Run(ctx, "sh", "-c", "sleep 5")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()
	requireSh(t)

	if _, err := Check(context.Background(), ExecRunner{}, "sh", "-c", "exit 0"); err != nil {
		t.Errorf("Check(exit 0) error = %v", err)
	}

	_, err := Check(context.Background(), ExecRunner{}, "sh", "-c", "echo boom >&2; exit 1")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Check(exit 1) error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 || exitErr.Cmd != "sh" {
		t.Errorf("ExitError = %+v", exitErr)
	}
	if !strings.HasSuffix(exitErr.Error(), ": boom") {
		t.Errorf("Error() = %q, want stderr suffix", exitErr.Error())
	}
}
