package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskdeck/internal/domain"
)

const (
	tasksFile    = "tasks.json"
	archiveFile  = "archive.json"
	settingsFile = "settings.json"
)

// Files is the persistence collaborator: three JSON files under a data
// directory, read once at startup and overwritten whole on save. The
// in-memory store stays the source of truth; last write wins.
type Files struct {
	dir string
}

func New(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Files{dir: dir}, nil
}

func (f *Files) Dir() string {
	return f.dir
}

func (f *Files) path(name string) string {
	return filepath.Join(f.dir, name)
}

// ensureFile creates the file holding an empty JSON array when absent.
func (f *Files) ensureFile(name string) error {
	path := f.path(name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("[]"), 0o644)
}

// LoadTasks reads the active task list. All selection flags are cleared
// and the first task, if any, selected.
func (f *Files) LoadTasks() ([]*domain.Task, error) {
	if err := f.ensureFile(tasksFile); err != nil {
		return nil, fmt.Errorf("failed to create tasks file: %w", err)
	}

	data, err := os.ReadFile(f.path(tasksFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks file: %w", err)
	}

	for _, t := range tasks {
		t.IsSelected = false
	}
	if len(tasks) > 0 {
		tasks[0].IsSelected = true
	}

	return tasks, nil
}

// LoadArchive reads the archive batches verbatim, with no selection
// normalization.
func (f *Files) LoadArchive() ([]*domain.ArchiveItem, error) {
	if err := f.ensureFile(archiveFile); err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}

	data, err := os.ReadFile(f.path(archiveFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read archive file: %w", err)
	}

	var archive []*domain.ArchiveItem
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("failed to parse archive file: %w", err)
	}

	return archive, nil
}

// LoadSettings reads the visual settings. A missing or malformed file
// falls back to the computed defaults rather than aborting the session.
func (f *Files) LoadSettings() domain.Settings {
	data, err := os.ReadFile(f.path(settingsFile))
	if err != nil {
		return domain.DefaultSettings()
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.DefaultSettings()
	}
	return settings
}

func (f *Files) SaveTasks(tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return f.write(tasksFile, tasks)
}

func (f *Files) SaveArchive(archive []*domain.ArchiveItem) error {
	if archive == nil {
		archive = []*domain.ArchiveItem{}
	}
	return f.write(archiveFile, archive)
}

func (f *Files) SaveSettings(settings domain.Settings) error {
	return f.write(settingsFile, settings)
}

func (f *Files) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(f.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
