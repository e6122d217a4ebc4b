package store

import (
	"time"

	"taskdeck/internal/domain"
)

// Store is the single in-memory owner of all task and archive state. It is
// mutated only from the TUI's update loop; the persisted files are a
// write-only mirror of it.
type Store struct {
	Tasks       []*domain.Task
	Archive     []*domain.ArchiveItem
	CurrArchive int

	firstVisible int
	archiveFirst int
	windowHeight int

	lastTick time.Time
}

func New(tasks []*domain.Task, archive []*domain.ArchiveItem) *Store {
	curr := 0
	if len(archive) > 0 {
		curr = len(archive) - 1
	}
	return &Store{
		Tasks:       tasks,
		Archive:     archive,
		CurrArchive: curr,
		lastTick:    time.Now(),
	}
}

// AddTask clears every selection flag, appends a new blank task and marks
// it selected. The caller hands control to the edit mode afterwards.
func (s *Store) AddTask() *domain.Task {
	for _, t := range s.Tasks {
		t.IsSelected = false
	}
	task := domain.NewTask()
	s.Tasks = append(s.Tasks, task)
	return task
}

// DeleteSelected removes the selected task and re-selects the task now at
// the same index, or the previous one if the removed task was last.
func (s *Store) DeleteSelected() {
	for i, t := range s.Tasks {
		if !t.IsSelected {
			continue
		}
		s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
		if len(s.Tasks) > 0 {
			if i < len(s.Tasks) {
				s.Tasks[i].IsSelected = true
			} else {
				s.Tasks[i-1].IsSelected = true
			}
		}
		return
	}
}

// MoveSelectedUp swaps the selected task with its predecessor.
func (s *Store) MoveSelectedUp() {
	for i := 1; i < len(s.Tasks); i++ {
		if s.Tasks[i].IsSelected {
			s.Tasks[i-1], s.Tasks[i] = s.Tasks[i], s.Tasks[i-1]
			return
		}
	}
}

// MoveSelectedDown swaps the selected task with its successor.
func (s *Store) MoveSelectedDown() {
	for i := 0; i < len(s.Tasks)-1; i++ {
		if s.Tasks[i].IsSelected {
			s.Tasks[i], s.Tasks[i+1] = s.Tasks[i+1], s.Tasks[i]
			return
		}
	}
}

// ToggleDone flips the done flag on the selected task. A task marked done
// while active is deactivated so its elapsed time stops accruing.
func (s *Store) ToggleDone() {
	for _, t := range s.Tasks {
		if t.IsSelected {
			t.IsDone = !t.IsDone
			if t.IsDone && t.IsActive {
				t.ToggleActive()
			}
			return
		}
	}
}

// ToggleActive deactivates whichever task is currently active, accruing
// its elapsed time up to now, and activates the selected task unless it is
// done. Selecting the active task itself just deactivates it.
func (s *Store) ToggleActive(now time.Time) {
	s.Advance(now)
	for _, t := range s.Tasks {
		if t.IsActive {
			t.ToggleActive()
		} else if t.IsSelected && !t.IsDone {
			t.ToggleActive()
		}
	}
}

// Advance accrues wall-clock time onto the active task and resets the tick
// reference. Driven by the periodic tick so elapsed time tracks real time,
// not just toggle boundaries.
func (s *Store) Advance(now time.Time) {
	delta := now.Sub(s.lastTick)
	s.lastTick = now
	if delta <= 0 {
		return
	}
	for _, t := range s.Tasks {
		if t.IsActive {
			t.Elapsed += delta
		}
	}
}

// SelectedTask returns the selected task of the active list, or nil.
func (s *Store) SelectedTask() *domain.Task {
	for _, t := range s.Tasks {
		if t.IsSelected {
			return t
		}
	}
	return nil
}

// EnsureSelection re-selects the first task when nothing is selected.
func (s *Store) EnsureSelection() {
	if s.SelectedTask() == nil && len(s.Tasks) > 0 {
		s.Tasks[0].IsSelected = true
	}
}

// SelectNext moves the selection one task down the active list.
func (s *Store) SelectNext() {
	for i := 0; i < len(s.Tasks)-1; i++ {
		if s.Tasks[i].IsSelected {
			s.Tasks[i].IsSelected = false
			s.Tasks[i+1].IsSelected = true
			s.scrollTo(i + 1)
			return
		}
	}
}

// SelectPrev moves the selection one task up the active list.
func (s *Store) SelectPrev() {
	for i := 1; i < len(s.Tasks); i++ {
		if s.Tasks[i].IsSelected {
			s.Tasks[i].IsSelected = false
			s.Tasks[i-1].IsSelected = true
			s.scrollTo(i - 1)
			return
		}
	}
}

// SetWindowHeight records the list pane height supplied by the renderer.
func (s *Store) SetWindowHeight(h int) {
	if h < 0 {
		h = 0
	}
	s.windowHeight = h
}

// FirstVisible is the scroll offset of the active list's window. The
// archive view keeps its own offset so the two lists scroll independently.
func (s *Store) FirstVisible() int {
	return s.firstVisible
}

// ArchiveFirstVisible is the scroll offset of the current batch's window.
func (s *Store) ArchiveFirstVisible() int {
	return s.archiveFirst
}

// WindowHeight is the last height pushed in by the renderer.
func (s *Store) WindowHeight() int {
	return s.windowHeight
}

// scrollTo shifts the active list's window by the minimal amount that
// brings the given index back into view.
func (s *Store) scrollTo(idx int) {
	s.firstVisible = s.scroll(s.firstVisible, idx)
}

func (s *Store) scrollArchiveTo(idx int) {
	s.archiveFirst = s.scroll(s.archiveFirst, idx)
}

func (s *Store) scroll(first, idx int) int {
	if s.windowHeight <= 0 {
		return first
	}
	if idx >= first+s.windowHeight {
		first = idx - s.windowHeight + 1
	}
	if idx < first {
		first = idx
	}
	if first < 0 {
		first = 0
	}
	return first
}
