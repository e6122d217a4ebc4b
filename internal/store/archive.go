package store

import (
	"time"

	"taskdeck/internal/domain"
)

// ArchiveDone moves every done task, in order, out of the active list and
// into a new batch stamped with now. An empty partition creates no batch.
func (s *Store) ArchiveDone(now time.Time) {
	batch := &domain.ArchiveItem{Date: now}

	lostSelection := false
	remaining := s.Tasks[:0]
	for _, t := range s.Tasks {
		if t.IsDone {
			if t.IsSelected {
				t.IsSelected = false
				lostSelection = true
			}
			batch.Tasks = append(batch.Tasks, *t)
		} else {
			remaining = append(remaining, t)
		}
	}
	s.Tasks = remaining

	if lostSelection && len(s.Tasks) > 0 {
		s.Tasks[0].IsSelected = true
	}

	if len(batch.Tasks) > 0 {
		batch.Tasks[0].IsSelected = true
		s.Archive = append(s.Archive, batch)
		s.CurrArchive = len(s.Archive) - 1
		s.archiveFirst = 0
	}
}

// DearchiveSelected moves the selected task of the current batch back to
// the end of the active list with its done and selection flags reset, then
// fixes up batch selection. A batch emptied this way is removed and the
// current batch index clamped back into range.
func (s *Store) DearchiveSelected() {
	batch := s.CurrentBatch()
	if batch == nil {
		return
	}

	for i := range batch.Tasks {
		if !batch.Tasks[i].IsSelected {
			continue
		}
		task := batch.Tasks[i]
		task.IsDone = false
		task.IsSelected = false
		s.Tasks = append(s.Tasks, &task)

		batch.Tasks = append(batch.Tasks[:i], batch.Tasks[i+1:]...)
		if len(batch.Tasks) > 0 {
			if i < len(batch.Tasks) {
				batch.Tasks[i].IsSelected = true
				s.scrollArchiveTo(i)
			} else {
				batch.Tasks[i-1].IsSelected = true
				s.scrollArchiveTo(i - 1)
			}
		}
		break
	}

	if len(batch.Tasks) == 0 {
		s.Archive = append(s.Archive[:s.CurrArchive], s.Archive[s.CurrArchive+1:]...)
		if len(s.Archive) == 0 {
			s.CurrArchive = 0
		} else if s.CurrArchive >= len(s.Archive) {
			s.CurrArchive = len(s.Archive) - 1
		}
		s.resetArchiveScroll()
	}
}

// CurrentBatch returns the batch the archive view is on, or nil when the
// archive is empty.
func (s *Store) CurrentBatch() *domain.ArchiveItem {
	if len(s.Archive) == 0 {
		return nil
	}
	return s.Archive[s.CurrArchive]
}

// NewerBatch moves the batch cursor toward the most recent batch.
func (s *Store) NewerBatch() {
	if len(s.Archive) > 0 && s.CurrArchive < len(s.Archive)-1 {
		s.CurrArchive++
		s.resetArchiveScroll()
	}
}

// OlderBatch moves the batch cursor toward the oldest batch.
func (s *Store) OlderBatch() {
	if s.CurrArchive > 0 {
		s.CurrArchive--
		s.resetArchiveScroll()
	}
}

// resetArchiveScroll rewinds the archive window to the top of the current
// batch, then brings its selected task back into view.
func (s *Store) resetArchiveScroll() {
	s.archiveFirst = 0
	batch := s.CurrentBatch()
	if batch == nil {
		return
	}
	for i := range batch.Tasks {
		if batch.Tasks[i].IsSelected {
			s.archiveFirst = s.scroll(0, i)
			return
		}
	}
}

// SelectedArchived returns the selected task within the current batch.
func (s *Store) SelectedArchived() *domain.Task {
	batch := s.CurrentBatch()
	if batch == nil {
		return nil
	}
	for i := range batch.Tasks {
		if batch.Tasks[i].IsSelected {
			return &batch.Tasks[i]
		}
	}
	return nil
}

// ArchiveSelectNext moves the selection down within the current batch.
func (s *Store) ArchiveSelectNext() {
	batch := s.CurrentBatch()
	if batch == nil {
		return
	}
	for i := 0; i < len(batch.Tasks)-1; i++ {
		if batch.Tasks[i].IsSelected {
			batch.Tasks[i].IsSelected = false
			batch.Tasks[i+1].IsSelected = true
			s.scrollArchiveTo(i + 1)
			return
		}
	}
}

// ArchiveSelectPrev moves the selection up within the current batch.
func (s *Store) ArchiveSelectPrev() {
	batch := s.CurrentBatch()
	if batch == nil {
		return
	}
	for i := 1; i < len(batch.Tasks); i++ {
		if batch.Tasks[i].IsSelected {
			batch.Tasks[i].IsSelected = false
			batch.Tasks[i-1].IsSelected = true
			s.scrollArchiveTo(i - 1)
			return
		}
	}
}
