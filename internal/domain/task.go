package domain

import (
	"fmt"
	"time"
)

type Task struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	IsDone      bool          `json:"is_done"`
	IsActive    bool          `json:"is_active"`
	IsSelected  bool          `json:"is_selected"`
	Elapsed     time.Duration `json:"elapsed_time"`
	CreatedOn   time.Time     `json:"created_on"`
}

// create a new blank task, selected so editing can start right away
func NewTask() *Task {
	return &Task{
		IsSelected: true,
		CreatedOn:  time.Now(),
	}
}

func (t *Task) ToggleActive() {
	t.IsActive = !t.IsActive
}

// human-readable accrued time for the duration column
func (t *Task) ElapsedString() string {
	secs := int64(t.Elapsed.Seconds())
	if secs < 60 {
		return "< 1 min"
	}

	hours := secs / 3600
	mins := (secs - hours*3600 + 30) / 60

	if hours > 0 {
		return fmt.Sprintf("%d h %d min", hours, mins)
	}
	return fmt.Sprintf("%d min", mins)
}
