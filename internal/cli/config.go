package cli

import (
	"errors"

	"github.com/mgpai22/rosetta/internal/config"
	"github.com/mgpai22/rosetta/internal/translate"
	"github.com/mgpai22/rosetta/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			if errors.Is(err, config.ErrNotFound) {
				ui.Error("No configuration found. Run 'rosetta setup' to create one.")
				return nil
			}
			return err
		}

		path, _ := config.Path()

		providerName := cfg.Provider
		if provider, err := translate.ParseProvider(cfg.Provider); err == nil {
			providerName = provider.Display()
		}

		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "<provider default>"
		}
		projectPath := cfg.ProjectPath
		if projectPath == "" {
			projectPath = "<not set>"
		}
		language := cfg.DefaultLanguage
		if language == "" {
			language = "<not set>"
		}

		ui.Header("Current Configuration")
		ui.Info("Config path", path)
		ui.Info("AI provider", providerName)
		ui.Info("API key", config.MaskKey(cfg.APIKey))
		ui.Info("Model", cfg.Model)
		ui.Info("Base URL", baseURL)
		ui.Info("Default language", language)
		ui.Info("Project path", projectPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
