package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of the backup with the given rotation number
// for the given snapshot file. Lower numbers are more recent: .bak.1 is the
// newest backup.
func BackupPath(statePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", statePath, BackupSuffix, n)
}

// rotateBackups shifts existing backups one slot down, dropping the oldest,
// to make room for a new .bak.1. Missing files are skipped.
func rotateBackups(statePath string) error {
	oldest := BackupPath(statePath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(statePath, i), BackupPath(statePath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the current snapshot file to .bak.1, rotating older
// backups. A missing snapshot file is not an error; there is simply nothing
// to back up yet.
func CreateBackup(statePath string) error {
	if _, err := os.Stat(statePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(statePath); err != nil {
		return err
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return err
	}
	return os.WriteFile(BackupPath(statePath, 1), data, 0644)
}

// BackupInfo describes one available backup file.
type BackupInfo struct {
	Number int    // rotation number: 1 is the most recent
	Path   string // full path to the backup file
}

// ListBackups returns available backups for the given snapshot file, most
// recent first. Returns an empty slice if none exist.
func ListBackups(statePath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(statePath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}
	return backups
}

// RestoreBackup copies the backup with the given rotation number over the
// snapshot file. The current snapshot is backed up first as a safety net.
func RestoreBackup(statePath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath := BackupPath(statePath, backupNum)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	if err := CreateBackup(statePath); err != nil {
		return err
	}

	return os.WriteFile(statePath, data, 0644)
}
