package cmd

import (
	"io"
	"os"

	"github.com/solrun/kvart/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Stdin       io.Reader
	Exit        func(code int)
	NewServices func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		NewServices: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// openServices builds the service layer, reporting initialization errors
// and any snapshot recovery to the user.
func openServices() (*service.Services, bool) {
	svcs, err := deps.NewServices()
	if err != nil {
		_, _ = io.WriteString(deps.Stderr, "Error: Failed to initialize state\n")
		_, _ = io.WriteString(deps.Stderr, "Details: "+err.Error()+"\n")
		_, _ = io.WriteString(deps.Stderr, "Hint: Check that your config directory is accessible\n")
		deps.Exit(1)
		return nil, false
	}
	if svcs.RecoveredFrom != "" {
		_, _ = io.WriteString(deps.Stderr, "Warning: state file was unreadable and has been moved to "+svcs.RecoveredFrom+"\n")
		_, _ = io.WriteString(deps.Stderr, "Starting with a fresh state\n")
	}
	return svcs, true
}
