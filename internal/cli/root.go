package cli

import (
	"github.com/joho/godotenv"
	"github.com/mgpai22/rosetta/internal/config"
	"github.com/mgpai22/rosetta/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rosetta",
	Short: "AI-powered translation for Apple .xcstrings catalogs",
	Long: `Rosetta translates the string catalogs of Xcode projects using
AI providers (OpenAI, Claude, Google Gemini, Grok).

It reads an .xcstrings file, finds the keys that still need a
translation for the target language, and fills them in interactively
or automatically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logger = logging.NewLogger(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// first run without a config goes straight to onboarding
		if !config.Exists() {
			return runOnboarding()
		}
		return cmd.Help()
	},
}

func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
