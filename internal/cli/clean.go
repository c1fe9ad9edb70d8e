package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mgpai22/rosetta/internal/backup"
	"github.com/mgpai22/rosetta/internal/ui"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up backup files",
	Long: `Scan a directory tree for catalog backup files and delete the ones
you pick.

Examples:
  rosetta clean
  rosetta clean -d ~/Projects/MyApp`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().
		StringP("directory", "d", "", "Directory to scan (defaults to the current directory)")
}

func runClean(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("directory")
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	ui.Banner()
	ui.Step("Scanning for backup files...")
	ui.Info("Directory", dir)

	backups, err := backup.Find(dir)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		ui.Warning("No backup files found in the specified directory.")
		return nil
	}

	fmt.Println()
	ui.Success(fmt.Sprintf("Found %d backup files:", len(backups)))
	for i, b := range backups {
		fmt.Printf("  %d. %s (%s, %s)\n",
			i+1,
			ui.Highlight(b.Path),
			ui.Dim(backup.FormatSize(b.Size)),
			ui.Dim(b.ModTime.Format("2006-01-02 15:04:05")),
		)
	}
	fmt.Println()

	options := []string{
		"Delete all backup files",
		"Select files to delete",
		"Cancel",
	}
	choice, err := ui.Select("Choose an action", options, 0)
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		fmt.Println()
		ui.Warning("This will delete every backup file listed above!")
		confirm, err := ui.Confirm("Delete all backup files?", false)
		if err != nil {
			return err
		}
		if !confirm {
			ui.Info("Action", "Cancelled")
			return nil
		}
		deleteBackups(backups)
	case 1:
		return selectAndDelete(backups)
	default:
		ui.Info("Action", "Cancelled")
	}

	return nil
}

func selectAndDelete(backups []backup.Info) error {
	fmt.Println()
	ui.Info("Hint", "Enter numbers separated by spaces or commas, e.g. 1 3 4")
	selection, err := ui.Ask("Files to delete (empty to cancel)")
	if err != nil {
		return err
	}
	if selection == "" {
		ui.Info("Action", "Cancelled")
		return nil
	}

	fields := strings.FieldsFunc(selection, func(r rune) bool {
		return r == ' ' || r == ','
	})
	seen := make(map[int]bool)
	var chosen []backup.Info
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(backups) {
			return fmt.Errorf(
				"invalid selection %q: use numbers between 1 and %d",
				field,
				len(backups),
			)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		chosen = append(chosen, backups[n-1])
	}
	if len(chosen) == 0 {
		ui.Info("Action", "Cancelled")
		return nil
	}

	fmt.Println()
	ui.Warning("About to delete the following files:")
	for i, b := range chosen {
		fmt.Printf("  %d. %s\n", i+1, b.Path)
	}
	fmt.Println()

	confirm, err := ui.Confirm("Delete the selected files?", false)
	if err != nil {
		return err
	}
	if !confirm {
		ui.Info("Action", "Cancelled")
		return nil
	}

	deleteBackups(chosen)
	return nil
}

func deleteBackups(backups []backup.Info) {
	deleted := 0
	failed := 0
	for _, b := range backups {
		if err := os.Remove(b.Path); err != nil {
			failed++
			ui.Error(fmt.Sprintf("Failed to delete: %s - %v", b.Path, err))
			continue
		}
		deleted++
		ui.Success(fmt.Sprintf("Deleted: %s", b.Path))
	}
	if failed > 0 {
		ui.Warning(fmt.Sprintf("Done: %d deleted, %d failed", deleted, failed))
	} else {
		ui.Success(fmt.Sprintf("Deleted %d backup files", deleted))
	}
}
