package cli

import (
	"fmt"

	"github.com/mgpai22/rosetta/internal/ui"
	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Display the welcome banner, help, and project address",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Banner()
		fmt.Println(ui.Highlight("GitHub: https://github.com/mgpai22/rosetta"))
		fmt.Println()
		return cmd.Root().Help()
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
