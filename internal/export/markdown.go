package export

import (
	"fmt"
	"io"

	"taskdeck/internal/domain"
)

func WriteMarkdown(w io.Writer, snap Snapshot) error {
	fmt.Fprintln(w, "# Tasks")
	fmt.Fprintln(w)

	if len(snap.Tasks) == 0 {
		fmt.Fprintln(w, "_No active tasks._")
		fmt.Fprintln(w)
	}
	for _, task := range snap.Tasks {
		writeTask(w, task)
	}

	if len(snap.Archive) == 0 {
		return nil
	}

	fmt.Fprintln(w, "# Archive")
	fmt.Fprintln(w)

	for _, batch := range snap.Archive {
		fmt.Fprintf(w, "## %s\n\n", batch.Date.Format("2006/01/02"))
		for i := range batch.Tasks {
			writeTask(w, &batch.Tasks[i])
		}
	}

	return nil
}

func writeTask(w io.Writer, task *domain.Task) {
	mark := " "
	if task.IsDone {
		mark = "x"
	}
	fmt.Fprintf(w, "- [%s] %s", mark, task.Title)
	if task.Elapsed > 0 {
		fmt.Fprintf(w, " (%s)", task.ElapsedString())
	}
	fmt.Fprintln(w)

	if task.Description != "" {
		fmt.Fprintf(w, "  %s\n", task.Description)
	}
}
