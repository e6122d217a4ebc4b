package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"taskdeck/internal/domain"
)

func WriteCSV(w io.Writer, snap Snapshot) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Scope", "Batch Date", "Title", "Description", "Done", "Elapsed", "Created On"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range snap.Tasks {
		if err := writer.Write(taskRow("active", "", task)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	for _, batch := range snap.Archive {
		date := batch.Date.Format("2006-01-02")
		for i := range batch.Tasks {
			if err := writer.Write(taskRow("archived", date, &batch.Tasks[i])); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func taskRow(scope, batchDate string, task *domain.Task) []string {
	return []string{
		scope,
		batchDate,
		task.Title,
		task.Description,
		strconv.FormatBool(task.IsDone),
		task.Elapsed.String(),
		task.CreatedOn.Format("2006-01-02 15:04:05"),
	}
}
