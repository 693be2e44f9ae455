package cmd

import (
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	ct := setupCmdTest(t)

	showConfig()

	output := ct.Stdout.String()
	if !strings.Contains(output, "Start Hour:      7") {
		t.Errorf("Expected default start hour, got: %s", output)
	}
	if !strings.Contains(output, "End Hour:        18") {
		t.Errorf("Expected default end hour, got: %s", output)
	}
	if !strings.Contains(output, "Segment Minutes: 15") {
		t.Errorf("Expected default segment length, got: %s", output)
	}
	if !strings.Contains(output, "Week Start Day:  monday") {
		t.Errorf("Expected default week start, got: %s", output)
	}
	if !strings.Contains(output, "No config file (using defaults)") {
		t.Errorf("Expected defaults status, got: %s", output)
	}
}

func TestSetConfig(t *testing.T) {
	ct := setupCmdTest(t)

	setConfig("start_hour", "8")

	if !strings.Contains(ct.Stdout.String(), "Set start_hour = 8") {
		t.Errorf("Expected set confirmation, got: %s", ct.Stdout.String())
	}

	ct.Stdout.Reset()
	showConfig()
	output := ct.Stdout.String()
	if !strings.Contains(output, "Start Hour:      8") {
		t.Errorf("Expected updated start hour, got: %s", output)
	}
	if !strings.Contains(output, "File exists (using custom configuration)") {
		t.Errorf("Expected config file to exist after set, got: %s", output)
	}
}

func TestSetConfig_UnknownKey(t *testing.T) {
	ct := setupCmdTest(t)

	setConfig("color", "red")

	if !ct.Exited {
		t.Error("Expected exit for unknown key")
	}
	errOutput := ct.Stderr.String()
	if !strings.Contains(errOutput, "Unknown setting 'color'") {
		t.Errorf("Expected unknown-key error, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "Valid keys:") {
		t.Errorf("Expected valid-key hint, got: %s", errOutput)
	}
}

func TestSetConfig_BadValue(t *testing.T) {
	ct := setupCmdTest(t)

	setConfig("start_hour", "nine")

	if !ct.Exited {
		t.Error("Expected exit for non-numeric hour")
	}
}

func TestSetConfig_ShrinksWindow(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("work", "")
	setConfig("segment_minutes", "30")
	ct.Exited = false

	// 22 half-hour segments now; 22 is out of range.
	toggleSegments("1", []string{"22"})
	if !ct.Exited {
		t.Error("Expected out-of-range after shrinking the window")
	}
	if !strings.Contains(ct.Stderr.String(), "0-21") {
		t.Errorf("Expected new range in error, got: %s", ct.Stderr.String())
	}
}
