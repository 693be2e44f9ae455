package cmd

import (
	"strings"
	"testing"
)

func TestGenerateCompletion_Bash(t *testing.T) {
	ct := setupCmdTest(t)

	generateCompletion("bash")

	if ct.Stdout.Len() == 0 {
		t.Error("Expected bash completion script output")
	}
	if ct.Exited {
		t.Errorf("Unexpected exit, stderr: %s", ct.Stderr.String())
	}
}

func TestGenerateCompletion_AllShells(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			ct := setupCmdTest(t)

			generateCompletion(shell)

			if ct.Stdout.Len() == 0 {
				t.Errorf("Expected %s completion script output", shell)
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	ct := setupCmdTest(t)

	generateCompletion("tcsh")

	if !ct.Exited {
		t.Error("Expected exit for unsupported shell")
	}
	if !strings.Contains(ct.Stderr.String(), "Unsupported shell 'tcsh'") {
		t.Errorf("Expected unsupported-shell error, got: %s", ct.Stderr.String())
	}
}
