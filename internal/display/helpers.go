package display

import (
	"time"

	"taskdeck/internal/domain"
)

func Checkbox(task *domain.Task) string {
	if task.IsDone {
		return "[X] "
	}
	return "[ ] "
}

func FormatBatchDate(date time.Time) string {
	return date.Format("2006/01/02")
}

func FormatCreatedOn(createdOn time.Time) string {
	return createdOn.Format("2006-01-02 15:04")
}
