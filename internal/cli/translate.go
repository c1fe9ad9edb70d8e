package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mgpai22/rosetta/internal/config"
	"github.com/mgpai22/rosetta/internal/keymap"
	"github.com/mgpai22/rosetta/internal/translate"
	"github.com/mgpai22/rosetta/internal/ui"
	"github.com/mgpai22/rosetta/internal/xcstrings"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [language]",
	Short: "Translate catalog strings to a target language",
	Long: `Translate the keys of an .xcstrings catalog to a target language.

The language argument is a code like ja, zh-Hans, or ko. When omitted,
the default language from the saved configuration is used.

Supplement mode (the default) only fills in keys that have no
translation yet. Fresh mode retranslates every key.

Examples:
  rosetta translate ja
  rosetta translate zh-Hans -f Shared/Resources/Localizable.xcstrings
  rosetta translate ko -p anthropic -m fresh
  rosetta translate ja --auto`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("file", "f", "", "Path to the .xcstrings file (auto-detected when omitted)")
	translateCmd.Flags().
		StringP("provider", "p", "", "Translation provider (openai, anthropic, gemini, grok)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set the provider's environment variable)")
	translateCmd.Flags().
		StringP("mode", "m", "supplement", "Translation mode (supplement or fresh)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific defaults)")
	translateCmd.Flags().
		Bool("model-override", false, "Allow any custom model, bypassing provider model validation")
	translateCmd.Flags().
		String("base-url", "", "Custom API base URL")
	translateCmd.Flags().
		Bool("auto", false, "Translate all keys without interaction")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	filePath, _ := cmd.Flags().GetString("file")
	providerFlag, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	modeFlag, _ := cmd.Flags().GetString("mode")
	model, _ := cmd.Flags().GetString("model")
	modelOverride, _ := cmd.Flags().GetBool("model-override")
	baseURL, _ := cmd.Flags().GetString("base-url")
	auto, _ := cmd.Flags().GetBool("auto")

	mode, err := xcstrings.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	hasConfig := err == nil
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return err
		}
		cfg = &config.Config{}
	}
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	providerName := firstNonEmpty(providerFlag, env.Provider, cfg.Provider, "openai")
	provider, err := translate.ParseProvider(providerName)
	if err != nil {
		return err
	}

	var language string
	if len(args) > 0 {
		language = strings.TrimSpace(args[0])
	}
	if language == "" {
		language = firstNonEmpty(env.DefaultLanguage, cfg.DefaultLanguage)
	}
	if language == "" {
		return fmt.Errorf(
			"target language is required: pass it as an argument or run 'rosetta setup'",
		)
	}
	if err := translate.ValidateCode(language); err != nil {
		return err
	}

	// remember the language for next time
	if len(args) > 0 && hasConfig && language != cfg.DefaultLanguage {
		if err := cfg.UpdateDefaultLanguage(language); err != nil {
			logger.Warnw("Failed to persist default language", "error", err)
		}
	}

	// stored credentials and model belong to the configured provider
	cfgMatches := cfg.Provider == string(provider)

	if model == "" {
		model = env.Model
	}
	if model == "" && cfgMatches {
		model = cfg.Model
	}
	if model != "" && !modelOverride && !translate.IsKnownModel(provider, model) {
		return fmt.Errorf(
			"unsupported %s model %q: valid models are %s (use --model-override to bypass)",
			provider.Display(),
			model,
			strings.Join(translate.KnownModels(provider), ", "),
		)
	}

	if baseURL == "" {
		baseURL = env.BaseURL
	}
	if baseURL == "" && cfgMatches {
		baseURL = cfg.BaseURL
	}

	if apiKey == "" {
		apiKey = env.KeyFor(string(provider))
	}
	if apiKey == "" && cfgMatches {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			keyEnvVar(provider),
		)
	}

	ui.Banner()

	if filePath != "" {
		if _, err := os.Stat(filePath); err != nil {
			return fmt.Errorf("file not found: %s", filePath)
		}
	} else {
		ui.Step("Auto-detecting project file...")
		filePath, err = detectCatalog(cfg)
		if err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("Found: %s", filePath))
	}

	logger.Infow("Starting catalog translation",
		"file", filePath,
		"language", language,
		"mode", string(mode),
		"provider", string(provider),
		"auto", auto,
	)

	ui.Step("Loading localization file...")
	file, err := xcstrings.Load(filePath)
	if err != nil {
		return err
	}

	ui.Step("Creating backup...")
	backupPath, err := file.CreateBackup()
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	ui.Success(fmt.Sprintf("Backup: %s", backupPath))

	keys := file.KeysNeedingTranslation(language, mode)
	if len(keys) == 0 {
		ui.Success(fmt.Sprintf(
			"No keys need %s translation for language '%s'",
			mode,
			language,
		))
		return nil
	}

	modeDesc := "Supplement (skip existing)"
	if mode == xcstrings.ModeFresh {
		modeDesc = "Fresh (retranslate all)"
	}
	effectiveModel := model
	if effectiveModel == "" {
		effectiveModel = translate.DefaultModel(provider)
	}

	fmt.Println()
	fmt.Println("Translation Task")
	ui.Info("Target", fmt.Sprintf("%s (%s)", translate.DisplayName(language), language))
	ui.Info("Mode", modeDesc)
	ui.Info("Keys", strconv.Itoa(len(keys)))
	ui.Info("Provider", provider.Display())
	ui.Info("Model", effectiveModel)
	fmt.Println()

	opts := translate.Options{
		SourceLanguage: file.SourceLanguage(),
		TargetLanguage: language,
		Model:          model,
		BaseURL:        baseURL,
	}
	translator, err := translate.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}
	defer translator.Close()

	if auto {
		if err := batchTranslateKeys(ctx, file, translator, keys, language); err != nil {
			return err
		}
	} else {
		if err := interactiveTranslate(ctx, file, translator, keys, language); err != nil {
			return err
		}
	}

	ui.Success("Translation completed")
	ui.Info("Backup", backupPath)
	ui.Info("Output", file.Path())
	ui.Info("Coverage", fmt.Sprintf(
		"%d/%d keys translated for %s",
		file.TranslatedCount(language),
		file.StringCount(),
		language,
	))

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func keyEnvVar(provider translate.Provider) string {
	switch provider {
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case translate.ProviderGemini:
		return "GEMINI_API_KEY"
	case translate.ProviderGrok:
		return "XAI_API_KEY"
	default:
		return "API_KEY"
	}
}

func detectCatalog(cfg *config.Config) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if path, err := xcstrings.Detect(cwd); err == nil {
		return path, nil
	}
	if cfg.ProjectPath != "" {
		if path, err := xcstrings.Detect(cfg.ProjectPath); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf(
		"could not find an .xcstrings catalog: use --file to specify the path",
	)
}

// gathers everything known about a key for the prompt
func translationContext(
	file *xcstrings.File,
	key, language string,
) translate.Context {
	return translate.Context{
		Key:        key,
		SourceText: file.SourceText(key),
		Meaning:    keymap.Meaning(key),
		Comment:    file.Comment(key),
		Category:   keymap.CategoryDescription(keymap.Category(key)),
		References: file.ReferenceTranslations(key, language, 3),
	}
}

func interactiveTranslate(
	ctx context.Context,
	file *xcstrings.File,
	translator translate.Translator,
	keys []string,
	language string,
) error {
	total := len(keys)
	current := 0

	for current < total {
		key := keys[current]
		remaining := total - current - 1

		ui.ClearScreen()
		fmt.Println()
		fmt.Println("Translation Progress")
		ui.Info("Status", fmt.Sprintf("%d/%d keys", current+1, total))
		ui.Info("Progress", fmt.Sprintf("%d%%", current*100/total))
		fmt.Println()

		fmt.Println("Key:")
		fmt.Printf("  %s\n", ui.Bold(key))
		fmt.Println()

		fmt.Println("Source text:")
		fmt.Printf("  %s\n", file.SourceText(key))
		fmt.Println()

		if meaning := keymap.Meaning(key); meaning != "" {
			ui.Info("Meaning", meaning)
		}
		if comment := file.Comment(key); comment != "" {
			ui.Info("Comment", comment)
		}

		if existing, ok := file.ExistingTranslation(key, language); ok {
			fmt.Println()
			fmt.Println("Existing translation:")
			fmt.Printf("  %s\n", ui.Highlight(existing))
		}
		fmt.Println()

		options := []string{
			"Translate",
			"Mark as no translation needed",
		}
		if remaining > 0 {
			options = append(options, "Batch translate next 30")
		}
		options = append(options, "Skip", "Save and exit")

		choice, err := ui.Select("Action", options, 0)
		if err != nil {
			return err
		}

		switch options[choice] {
		case "Translate":
			saved, err := translateSingleKey(ctx, file, translator, key, language)
			if err != nil {
				return err
			}
			if saved {
				if err := file.Save(); err != nil {
					return err
				}
				ui.Success("Translation saved")
				time.Sleep(800 * time.Millisecond)
			}
			current++
		case "Mark as no translation needed":
			if err := file.MarkNoTranslate(key); err != nil {
				return err
			}
			if err := file.Save(); err != nil {
				return err
			}
			ui.Success("Marked as no translation needed")
			time.Sleep(800 * time.Millisecond)
			current++
		case "Batch translate next 30":
			batch := keys[current:]
			if len(batch) > 30 {
				batch = batch[:30]
			}
			ok, err := confirmBatch(batch, language)
			if err != nil {
				return err
			}
			if ok {
				if err := batchTranslateKeys(ctx, file, translator, batch, language); err != nil {
					return err
				}
				current += len(batch)
			}
		case "Skip":
			current++
		case "Save and exit":
			return nil
		}
	}

	return nil
}

// translates one key and lets the user accept, correct, or skip it.
// Returns true when a translation was added to the catalog.
func translateSingleKey(
	ctx context.Context,
	file *xcstrings.File,
	translator translate.Translator,
	key, language string,
) (bool, error) {
	fmt.Println("Translating...")

	translation, err := translator.TranslateOne(
		ctx,
		translationContext(file, key, language),
	)
	if err != nil {
		ui.Error(fmt.Sprintf("Translation failed: %v", err))
		time.Sleep(2 * time.Second)
		return false, nil
	}

	fmt.Println()
	fmt.Println("Translation:")
	fmt.Printf("  %s\n", ui.Bold(translation))
	fmt.Println()

	accept, err := ui.Confirm("Accept translation?", true)
	if err != nil {
		return false, err
	}
	if accept {
		if err := file.AddTranslation(key, language, translation); err != nil {
			return false, err
		}
		return true, nil
	}

	custom, err := ui.Ask("Custom translation (empty to skip)")
	if err != nil {
		return false, err
	}
	if custom != "" {
		if err := file.AddTranslation(key, language, custom); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func confirmBatch(keys []string, language string) (bool, error) {
	fmt.Println()
	fmt.Printf(
		"Batch translate %d keys to %s\n",
		len(keys),
		ui.Highlight(translate.DisplayName(language)),
	)
	fmt.Println()

	ui.Substep("Keys to translate:")
	for i, key := range keys {
		if i == 10 {
			fmt.Printf("    %s\n", ui.Dim(fmt.Sprintf("... and %d more", len(keys)-10)))
			break
		}
		fmt.Printf("    %s\n", ui.Dim(key))
	}
	fmt.Println()

	return ui.Confirm("Proceed with batch translation", true)
}

func batchTranslateKeys(
	ctx context.Context,
	file *xcstrings.File,
	translator translate.Translator,
	keys []string,
	language string,
) error {
	bar := ui.NewProgressBar(len(keys), translate.DisplayName(language))

	successCount := 0
	var failedKeys []string

	for i, key := range keys {
		display := key
		if len(display) > 40 {
			display = display[:37] + "..."
		}
		bar.Describe(fmt.Sprintf("[cyan]%s[reset]", display))

		translation, err := translator.TranslateOne(
			ctx,
			translationContext(file, key, language),
		)
		if err != nil {
			failedKeys = append(failedKeys, key)
			logger.Warnw("Translation failed", "key", key, "error", err)
		} else if addErr := file.AddTranslation(key, language, translation); addErr != nil {
			failedKeys = append(failedKeys, key)
			logger.Errorw("Failed to record translation", "key", key, "error", addErr)
		} else {
			successCount++
		}

		_ = bar.Add(1)

		// save periodically
		if (i+1)%10 == 0 {
			if err := file.Save(); err != nil {
				return err
			}
			logger.Debugw("Progress saved", "completed", i+1, "total", len(keys))
		}

		// rate limiting
		time.Sleep(200 * time.Millisecond)
	}

	_ = bar.Clear()

	if err := file.Save(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Batch translation completed")
	ui.Info("Successful", strconv.Itoa(successCount))
	ui.Info("Failed", strconv.Itoa(len(failedKeys)))

	if len(failedKeys) > 0 && len(failedKeys) <= 5 {
		fmt.Println()
		ui.Substep("Failed keys:")
		for _, key := range failedKeys {
			fmt.Printf("    %s\n", ui.Dim(key))
		}
	}

	fmt.Println()
	return nil
}
