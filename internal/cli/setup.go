package cli

import (
	"fmt"

	"github.com/mgpai22/rosetta/internal/config"
	"github.com/mgpai22/rosetta/internal/translate"
	"github.com/mgpai22/rosetta/internal/ui"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run initial setup and configuration",
	Long: `Walk through provider, API key, model, and language selection and
save the result to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnboarding()
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runOnboarding() error {
	ui.ClearScreen()
	ui.Banner()

	fmt.Println(ui.Bold("Welcome to Rosetta!"))
	fmt.Println(ui.Dim("Let's set up your localization environment."))
	fmt.Println()

	proceed, err := ui.Confirm("Would you like to set up Rosetta now?", true)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Println()
		fmt.Println(ui.Dim("You can run setup anytime by using:"))
		fmt.Println(ui.Bold("  rosetta setup"))
		return nil
	}

	ui.Header("API Configuration")

	providers := []translate.Provider{
		translate.ProviderOpenAI,
		translate.ProviderAnthropic,
		translate.ProviderGemini,
		translate.ProviderGrok,
	}
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Display()
	}
	idx, err := ui.Select("Select your AI provider", names, 0)
	if err != nil {
		return err
	}
	provider := providers[idx]

	var apiKey string
	for apiKey == "" {
		apiKey, err = ui.AskSecret("Enter your API key")
		if err != nil {
			return err
		}
	}

	models := translate.KnownModels(provider)
	defaultIdx := 0
	for i, m := range models {
		if m == translate.DefaultModel(provider) {
			defaultIdx = i
			break
		}
	}
	modelIdx, err := ui.Select(
		fmt.Sprintf("Select %s model", provider.Display()),
		models,
		defaultIdx,
	)
	if err != nil {
		return err
	}

	ui.Header("Language Settings")

	var language string
	for {
		language, err = ui.AskDefault(
			"Default target language (e.g., ja, zh-Hans, ko)",
			"en",
		)
		if err != nil {
			return err
		}
		if err := translate.ValidateCode(language); err == nil {
			break
		} else {
			ui.Warning(err.Error())
		}
	}

	ui.Header("Project Settings")

	projectPath, err := ui.Ask("Project path (optional, press Enter to skip)")
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Provider:        string(provider),
		APIKey:          apiKey,
		Model:           models[modelIdx],
		DefaultLanguage: language,
		ProjectPath:     projectPath,
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	path, _ := config.Path()

	fmt.Println()
	ui.Success("Setup complete!")
	ui.Info("Config", path)
	fmt.Println()
	fmt.Println(ui.Dim("Your settings have been saved. Review them anytime with:"))
	fmt.Println(ui.Bold("  rosetta config"))
	fmt.Println(ui.Dim("Verify the provider connection with:"))
	fmt.Println(ui.Bold("  rosetta test"))
	fmt.Println()

	return nil
}
