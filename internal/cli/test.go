package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgpai22/rosetta/internal/config"
	"github.com/mgpai22/rosetta/internal/translate"
	"github.com/mgpai22/rosetta/internal/ui"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection with the AI provider",
	Long: `Send a short translation request to the configured provider to
verify the API key, model, and endpoint work.`,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			ui.Error("No configuration found. Run 'rosetta setup' first.")
			return nil
		}
		return err
	}

	provider, err := translate.ParseProvider(cfg.Provider)
	if err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}
		apiKey = env.KeyFor(string(provider))
	}

	ui.Step(fmt.Sprintf("Testing %s connection...", provider.Display()))

	ctx := context.Background()
	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		TargetLanguage: "ja",
		Model:          cfg.Model,
		BaseURL:        cfg.BaseURL,
	})
	if err != nil {
		return err
	}
	defer translator.Close()

	translation, err := translate.TestConnection(ctx, translator)
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	ui.Success("Connection test successful!")
	ui.Info("Test translation", translation)

	return nil
}
