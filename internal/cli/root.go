package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskdeck/internal/config"
	"taskdeck/internal/storage"
	"taskdeck/internal/store"
	"taskdeck/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck [data-dir]",
	Short: "Taskdeck - a terminal task tracker",
	Long: `Taskdeck is an interactive terminal task tracker. Tasks live in a
plain JSON data directory; the optional positional argument points the
session at a different directory than the configured one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveDataDir picks the storage directory: the positional argument
// wins over the configured default.
func resolveDataDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.DataDir, nil
}

// openFiles binds the persistence layer to the resolved data directory.
func openFiles(args []string) (*storage.Files, error) {
	dir, err := resolveDataDir(args)
	if err != nil {
		return nil, err
	}
	return storage.New(dir)
}

func runRoot(cmd *cobra.Command, args []string) error {
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
	settings := files.LoadSettings()

	st := store.New(tasks, archive)
	model := tui.NewModel(st, files, settings)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run the UI: %w", err)
	}

	return nil
}
