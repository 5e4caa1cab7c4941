// SPDX-License-Identifier: EPL-2.0

// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"strings"
	"sync"

	"github.com/ik5/jaguarbsp/shell"
)

// Response is what the fake returns for a matching command.
type Response struct {
	Result shell.Result
	Err    error
	// Hook runs before the response is returned, e.g. to create files the
	// real tool would have written.
	Hook func(ctx context.Context, args []string)
}

// Runner records every call and answers from Responses, keyed by program
// name. Unknown programs succeed with empty output.
type Runner struct {
	mtx       sync.Mutex
	Responses map[string]Response
	calls     [][]string
}

func NewRunner() *Runner {
	return &Runner{Responses: make(map[string]Response)}
}

// On sets the response for program name and returns r for chaining.
func (r *Runner) On(name string, resp Response) *Runner {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.Responses[name] = resp
	return r
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) (shell.Result, error) {
	r.mtx.Lock()
	r.calls = append(r.calls, append([]string{name}, args...))
	resp := r.Responses[name]
	r.mtx.Unlock()

	if resp.Hook != nil {
		resp.Hook(ctx, args)
	}

	return resp.Result, resp.Err
}

// Calls returns the recorded command lines.
func (r *Runner) Calls() [][]string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([][]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Called reports whether a command line starting with prefix was run.
func (r *Runner) Called(prefix ...string) bool {
	want := strings.Join(prefix, " ")
	for _, c := range r.Calls() {
		if strings.HasPrefix(strings.Join(c, " "), want) {
			return true
		}
	}
	return false
}
