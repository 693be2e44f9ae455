// Package service wires the track state, the day window, and snapshot
// persistence behind small per-concern services. Every mutating call writes
// the snapshot back to disk before returning, so the on-disk state always
// reflects the last completed operation.
package service

import (
	"fmt"

	"github.com/solrun/kvart/internal/config"
	"github.com/solrun/kvart/internal/storage"
	"github.com/solrun/kvart/internal/track"
)

// SnapshotVersion is the version tag written into the app section of the
// persisted snapshot.
const SnapshotVersion = "1"

// Services holds all service instances used by the application
type Services struct {
	Task   *TaskService
	Ledger *LedgerService
	View   *ViewService
	Config *ConfigService

	// RecoveredFrom is set when the snapshot on disk was unreadable and
	// has been moved aside; callers may want to tell the user.
	RecoveredFrom string
}

// core is the shared backbone of all services: the state container, the
// configured day window, and the persistence hook.
type core struct {
	state     *track.State
	window    track.Window
	statePath string
}

// save persists the current snapshot. The previous snapshot file is backed
// up first so a bad write never costs more than one mutation.
func (c *core) save() error {
	if err := storage.CreateBackup(c.statePath); err != nil {
		return fmt.Errorf("failed to back up state: %w", err)
	}
	if err := storage.Save(c.statePath, c.state.Snapshot()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// row resolves a task ID to its board row, tolerating orphans.
func (c *core) row(taskID int) TaskRow {
	if t, ok := c.state.Tasks.Get(taskID); ok {
		return TaskRow{ID: t.ID, Description: t.Description, Type: t.Type}
	}
	return TaskRow{ID: taskID, Description: "(deleted task)", Orphan: true}
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	statePath, err := storage.GetStatePath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(statePath, configPath, cfg)
}

// NewServicesWithPaths creates a new Services instance with custom paths
// (useful for testing). The snapshot at statePath is restored if present.
func NewServicesWithPaths(statePath, configPath string, cfg config.Config) (*Services, error) {
	result, err := storage.Load(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	c := &core{
		state:     track.NewState(SnapshotVersion, result.Snapshot),
		window:    cfg.Window(),
		statePath: statePath,
	}

	return &Services{
		Task:          &TaskService{core: c},
		Ledger:        &LedgerService{core: c},
		View:          &ViewService{core: c},
		Config:        &ConfigService{core: c, path: configPath, cfg: cfg},
		RecoveredFrom: result.BackupPath,
	}, nil
}

// Window returns the configured day window.
func (s *Services) Window() track.Window {
	return s.Task.core.window
}

// StatePath returns the path of the snapshot file backing these services.
func (s *Services) StatePath() string {
	return s.Task.core.statePath
}
