package domain

import "time"

// ArchiveItem is a batch of tasks archived together, stamped with the
// capture time of the archiving action.
type ArchiveItem struct {
	Date  time.Time `json:"date"`
	Tasks []Task    `json:"tasks"`
}
