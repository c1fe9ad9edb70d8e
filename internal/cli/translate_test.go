package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mgpai22/rosetta/internal/keymap"
	"github.com/mgpai22/rosetta/internal/translate"
	"github.com/mgpai22/rosetta/internal/xcstrings"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{[]string{"a", "b"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", ""}, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := firstNonEmpty(tt.values...); got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

func TestKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider translate.Provider
		want     string
	}{
		{translate.ProviderOpenAI, "OPENAI_API_KEY"},
		{translate.ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{translate.ProviderGemini, "GEMINI_API_KEY"},
		{translate.ProviderGrok, "XAI_API_KEY"},
		{translate.Provider("other"), "API_KEY"},
	}

	for _, tt := range tests {
		if got := keyEnvVar(tt.provider); got != tt.want {
			t.Errorf("keyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestTranslationContext(t *testing.T) {
	catalog := `{
  "sourceLanguage": "en",
  "version": "1.0",
  "strings": {
    "NSCameraUsageDescription": {
      "comment": "Shown in the system permission dialog",
      "localizations": {
        "en": {
          "stringUnit": {
            "state": "translated",
            "value": "We use the camera to scan codes."
          }
        },
        "fr": {
          "stringUnit": {
            "state": "translated",
            "value": "Nous utilisons la caméra pour scanner des codes."
          }
        },
        "ja": {
          "stringUnit": {
            "state": "translated",
            "value": "カメラを使用してコードをスキャンします。"
          }
        }
      }
    }
  }
}`

	path := filepath.Join(t.TempDir(), "Localizable.xcstrings")
	if err := os.WriteFile(path, []byte(catalog), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	file, err := xcstrings.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	tctx := translationContext(file, "NSCameraUsageDescription", "ja")

	if tctx.Key != "NSCameraUsageDescription" {
		t.Errorf("Key = %q", tctx.Key)
	}
	if tctx.SourceText != "We use the camera to scan codes." {
		t.Errorf("SourceText = %q, want the source-language value", tctx.SourceText)
	}
	if tctx.Comment != "Shown in the system permission dialog" {
		t.Errorf("Comment = %q", tctx.Comment)
	}
	if tctx.Meaning == "" {
		t.Error("Meaning should come from the key mapping table")
	}
	want := keymap.CategoryDescription(keymap.CategorySystemPermission)
	if tctx.Category != want {
		t.Errorf("Category = %q, want %q", tctx.Category, want)
	}
	if _, ok := tctx.References["fr"]; !ok {
		t.Error("References should include the French translation")
	}
	if _, ok := tctx.References["ja"]; ok {
		t.Error("References should exclude the target language")
	}
	if _, ok := tctx.References["en"]; ok {
		t.Error("References should exclude the source language")
	}
}
