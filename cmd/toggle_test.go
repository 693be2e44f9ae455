package cmd

import (
	"strings"
	"testing"
)

func TestToggleSegment(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("work", "")
	ct.Stdout.Reset()

	toggleSegments("1", []string{"0"})
	if !strings.Contains(ct.Stdout.String(), "07:00 logged") {
		t.Errorf("Expected logged confirmation with clock label, got: %s", ct.Stdout.String())
	}

	ct.Stdout.Reset()
	toggleSegments("1", []string{"0"})
	if !strings.Contains(ct.Stdout.String(), "07:00 cleared") {
		t.Errorf("Expected cleared confirmation, got: %s", ct.Stdout.String())
	}
}

func TestToggleSegments_Multiple(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("work", "")
	ct.Stdout.Reset()

	toggleSegments("1", []string{"4", "5", "6"})
	output := ct.Stdout.String()
	for _, label := range []string{"08:00 logged", "08:15 logged", "08:30 logged"} {
		if !strings.Contains(output, label) {
			t.Errorf("Expected %q in output, got: %s", label, output)
		}
	}

	ct.Stdout.Reset()
	showBoard()
	if !strings.Contains(ct.Stdout.String(), "00:45") {
		t.Errorf("Expected 00:45 total after three segments, got: %s", ct.Stdout.String())
	}
}

func TestToggleSegment_OutOfRange(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("work", "")
	toggleSegments("1", []string{"44"})

	if !ct.Exited {
		t.Error("Expected exit for out-of-range segment")
	}
	errOutput := ct.Stderr.String()
	if !strings.Contains(errOutput, "out of range") {
		t.Errorf("Expected range error, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "0-43") {
		t.Errorf("Expected valid range hint, got: %s", errOutput)
	}
}

func TestToggleSegment_InvalidArgs(t *testing.T) {
	ct := setupCmdTest(t)

	toggleSegments("one", []string{"0"})
	if !ct.Exited {
		t.Error("Expected exit for non-numeric task ID")
	}

	ct.Exited = false
	toggleSegments("1", []string{"zero"})
	if !ct.Exited {
		t.Error("Expected exit for non-numeric segment")
	}
}

func TestToggleSegment_PersistsAcrossInvocations(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("work", "")
	toggleSegments("1", []string{"3"})
	ct.Stdout.Reset()

	// A separate invocation reads the same state file.
	showBoard()
	if !strings.Contains(ct.Stdout.String(), "00:15") {
		t.Errorf("Expected persisted segment in total, got: %s", ct.Stdout.String())
	}
}
