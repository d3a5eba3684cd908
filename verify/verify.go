// Package verify runs the smoke checks shipped with the backend binary.
package verify

import (
	"errors"
	"fmt"
	"io"

	"github.com/cicd-demo/backend/greeting"
)

// ErrCheckFailed is returned by Run when a check does not hold.
var ErrCheckFailed = errors.New("check failed")

// Check is a single named assertion.
type Check struct {
	Name string
	Pass func() bool
}

// DefaultChecks returns the smoke checks in the order they are run.
func DefaultChecks() []Check {
	return []Check{
		{
			Name: "Addition",
			Pass: func() bool { return greeting.Add(2, 3) == 5 },
		},
		{
			Name: "Greeting",
			Pass: func() bool { return greeting.Greet("Jenkins") == "Hello, Jenkins!" },
		},
	}
}

// Run executes checks in order and writes one status line per check to w.
// It stops at the first failing check and returns an error wrapping
// ErrCheckFailed.
func Run(w io.Writer, checks []Check) error {
	fmt.Fprintln(w, "🧪 Starting tests...")

	for _, c := range checks {
		if !c.Pass() {
			fmt.Fprintf(w, "❌ %s test failed!\n", c.Name)
			return fmt.Errorf("%s: %w", c.Name, ErrCheckFailed)
		}
		fmt.Fprintf(w, "✅ %s test passed!\n", c.Name)
	}

	fmt.Fprintln(w, "🎉 All tests passed!")
	return nil
}
