package export

import (
	"fmt"

	"taskdeck/internal/domain"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Snapshot is the exported view of the persisted store: the active task
// list plus every archive batch.
type Snapshot struct {
	Version string                `json:"version"`
	Tasks   []*domain.Task        `json:"tasks"`
	Archive []*domain.ArchiveItem `json:"archive"`
}

func NewSnapshot(tasks []*domain.Task, archive []*domain.ArchiveItem) Snapshot {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	if archive == nil {
		archive = []*domain.ArchiveItem{}
	}
	return Snapshot{
		Version: "1.0",
		Tasks:   tasks,
		Archive: archive,
	}
}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format: %q (expected json, csv or markdown)", s)
	}
}
