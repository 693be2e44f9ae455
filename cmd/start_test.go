package cmd

import (
	"strings"
	"testing"
)

func TestStartTimer(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("live work", "")
	ct.Stdout.Reset()

	startTimer("1")

	output := ct.Stdout.String()
	if !strings.Contains(output, "Started timer for [1] live work") {
		t.Errorf("Expected start confirmation, got: %s", output)
	}
}

func TestStartTimer_UnknownTask(t *testing.T) {
	ct := setupCmdTest(t)

	startTimer("42")

	if !ct.Exited {
		t.Error("Expected exit for unknown task")
	}
	if !strings.Contains(ct.Stderr.String(), "No task with ID 42") {
		t.Errorf("Expected not-found error, got: %s", ct.Stderr.String())
	}
}

func TestStopTimer(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("live work", "")
	startTimer("1")
	ct.Stdout.Reset()

	stopTimer("1")

	output := ct.Stdout.String()
	if !strings.Contains(output, "Stopped timer for [1]") {
		t.Errorf("Expected stop confirmation, got: %s", output)
	}
}

func TestStopTimer_NoneRunning(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("idle", "")
	stopTimer("1")

	if !ct.Exited {
		t.Error("Expected exit when no timer is running")
	}
	if !strings.Contains(ct.Stderr.String(), "No running timer for task 1") {
		t.Errorf("Expected no-timer error, got: %s", ct.Stderr.String())
	}
}

func TestShowStatus_NoTimerRunning(t *testing.T) {
	ct := setupCmdTest(t)

	showStatus()

	output := ct.Stdout.String()
	if !strings.Contains(output, "No timer running") {
		t.Errorf("Expected 'No timer running', got: %s", output)
	}
	if !strings.Contains(output, "kvart start") {
		t.Errorf("Expected start hint, got: %s", output)
	}
}

func TestShowStatus_TimerRunning(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("fixing authentication bug", "")
	startTimer("1")
	ct.Stdout.Reset()

	showStatus()

	output := ct.Stdout.String()
	if !strings.Contains(output, "Timer running:") {
		t.Errorf("Expected 'Timer running:', got: %s", output)
	}
	if !strings.Contains(output, "fixing authentication bug") {
		t.Errorf("Expected description, got: %s", output)
	}
	if !strings.Contains(output, "Started: today at") {
		t.Errorf("Expected today's start time, got: %s", output)
	}
	if !strings.Contains(output, "Elapsed:") {
		t.Errorf("Expected elapsed line, got: %s", output)
	}
}

func TestShowStatus_ParallelTimers(t *testing.T) {
	ct := setupCmdTest(t)

	addTask("a", "")
	addTask("b", "")
	startTimer("1")
	startTimer("2")
	ct.Stdout.Reset()

	showStatus()

	output := ct.Stdout.String()
	if strings.Count(output, "Timer running:") != 2 {
		t.Errorf("Expected two running timers, got: %s", output)
	}
}
