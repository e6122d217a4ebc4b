package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"taskdeck/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [data-dir]",
	Short: "Export tasks and archive to JSON, CSV or markdown",
	Long: `Export reads the data directory the root command would use and
writes a snapshot of the active tasks and the archive.

Examples:
  taskdeck export --format json
  taskdeck export --format csv --out tasks.csv
  taskdeck export ~/other-deck --format markdown --out tasks.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, csv or markdown")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	files, err := openFiles(args)
	if err != nil {
		return err
	}

	tasks, err := files.LoadTasks()
	if err != nil {
		return err
	}
	archive, err := files.LoadArchive()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	snap := export.NewSnapshot(tasks, archive)

	switch format {
	case export.FormatCSV:
		return export.WriteCSV(w, snap)
	case export.FormatMarkdown:
		return export.WriteMarkdown(w, snap)
	default:
		return export.WriteJSON(w, snap)
	}
}
