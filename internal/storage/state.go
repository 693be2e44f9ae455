// Package storage persists the kvart state snapshot as a single JSON file.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/solrun/kvart/internal/track"
)

const (
	// AppName is the application name used for the config directory
	AppName = "kvart"
	// StateFile is the name of the JSON snapshot file
	StateFile = "state.json"
	// CorruptSuffix is appended to an unreadable snapshot before starting fresh
	CorruptSuffix = ".corrupt"
)

// LoadResult describes the outcome of loading a snapshot. Recovered is set
// when the file existed but could not be parsed; the broken file is then
// preserved at BackupPath and the snapshot is nil (start fresh).
type LoadResult struct {
	Snapshot   *track.Snapshot
	Recovered  bool
	BackupPath string
}

// GetStatePath returns the path to the snapshot file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetStatePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, StateFile), nil
}

// Load reads the snapshot from the given path.
//
// A missing file is not an error: the result carries a nil snapshot and the
// caller starts fresh. A file that exists but fails to parse is moved aside
// to path+".corrupt" and likewise yields a nil snapshot; a malformed
// snapshot must never propagate a crash into the startup path.
func Load(path string) (LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{}, nil
		}
		return LoadResult{}, err
	}

	var snap track.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		backupPath := path + CorruptSuffix
		_ = os.Rename(path, backupPath)
		return LoadResult{Recovered: true, BackupPath: backupPath}, nil
	}

	return LoadResult{Snapshot: &snap}, nil
}

// Save writes the snapshot to the given path.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func Save(path string, snap track.Snapshot) error {
	// Snapshot contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(snap, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}
