package xcstrings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCatalog = `{
  "sourceLanguage": "en",
  "version": "1.0",
  "strings": {
    "CFBundleDisplayName": {
      "comment": "App name on the home screen",
      "extractionState": "manual",
      "localizations": {
        "en": {
          "stringUnit": {
            "state": "translated",
            "value": "Clock Widgets"
          }
        },
        "fr": {
          "stringUnit": {
            "state": "translated",
            "value": "Widgets Horloge"
          }
        }
      }
    },
    "greeting.title": {
      "localizations": {
        "en": {
          "stringUnit": {
            "state": "translated",
            "value": "Welcome back, %@!"
          }
        },
        "ja": {
          "stringUnit": {
            "state": "needs_review",
            "value": ""
          }
        }
      }
    },
    "app.version.label": {
      "shouldTranslate": false,
      "localizations": {
        "en": {
          "stringUnit": {
            "state": "translated",
            "value": "v1.0"
          }
        }
      }
    },
    "brand.name": {
      "localizations": {
        "de": {
          "stringUnit": {
            "state": "translated",
            "value": "Marke"
          },
          "shouldTranslate": false
        }
      }
    },
    "plain.key": {}
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Localizable.xcstrings")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadParsesCatalog(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if file.SourceLanguage() != "en" {
		t.Errorf("source language = %q, want en", file.SourceLanguage())
	}
	if got := file.StringCount(); got != 5 {
		t.Errorf("StringCount = %d, want 5", got)
	}
	if got := file.Comment("CFBundleDisplayName"); got != "App name on the home screen" {
		t.Errorf("Comment = %q", got)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xcstrings")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.xcstrings")); err == nil {
		t.Error("expected error for missing file")
	}
}

// Unknown fields like extractionState must survive load -> save.
func TestSaveRoundTripPreservesUnknownFields(t *testing.T) {
	path := writeSample(t)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := file.AddTranslation("greeting.title", "ja", "おかえりなさい、%@さん！"); err != nil {
		t.Fatalf("AddTranslation returned error: %v", err)
	}
	if err := file.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}

	var saved map[string]interface{}
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}

	strs := saved["strings"].(map[string]interface{})
	display := strs["CFBundleDisplayName"].(map[string]interface{})
	if display["extractionState"] != "manual" {
		t.Errorf("extractionState lost in round trip: %v", display["extractionState"])
	}
	if display["comment"] != "App name on the home screen" {
		t.Errorf("comment lost in round trip: %v", display["comment"])
	}

	greeting := strs["greeting.title"].(map[string]interface{})
	locs := greeting["localizations"].(map[string]interface{})
	ja := locs["ja"].(map[string]interface{})
	unit := ja["stringUnit"].(map[string]interface{})
	if unit["state"] != StateTranslated {
		t.Errorf("ja state = %v, want translated", unit["state"])
	}
	if unit["value"] != "おかえりなさい、%@さん！" {
		t.Errorf("ja value = %v", unit["value"])
	}

	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should end with a newline")
	}
}

func TestRoundTripIsStable(t *testing.T) {
	path := writeSample(t)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := file.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	var original, saved interface{}
	if err := json.Unmarshal([]byte(sampleCatalog), &original); err != nil {
		t.Fatalf("fixture unmarshal: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("saved unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, saved) {
		t.Errorf("save changed catalog content\noriginal: %v\nsaved: %v", original, saved)
	}
}

func TestKeysNeedingTranslationSupplement(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	keys := file.KeysNeedingTranslation("ja", ModeSupplement)

	// app.version.label is excluded at entry level, brand.name at
	// localization level. greeting.title has an empty ja value, so it
	// still needs work.
	want := []string{"CFBundleDisplayName", "greeting.title", "plain.key"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("supplement keys = %v, want %v", keys, want)
	}
}

func TestKeysNeedingTranslationSupplementSkipsTranslated(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	keys := file.KeysNeedingTranslation("fr", ModeSupplement)
	for _, key := range keys {
		if key == "CFBundleDisplayName" {
			t.Error("keys with an existing fr value should be skipped in supplement mode")
		}
	}
}

func TestKeysNeedingTranslationFresh(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	keys := file.KeysNeedingTranslation("fr", ModeFresh)

	want := []string{"CFBundleDisplayName", "greeting.title", "plain.key"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("fresh keys = %v, want %v", keys, want)
	}
}

func TestAddTranslation(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := file.AddTranslation("plain.key", "ko", "안녕"); err != nil {
		t.Fatalf("AddTranslation returned error: %v", err)
	}

	got, ok := file.ExistingTranslation("plain.key", "ko")
	if !ok || got != "안녕" {
		t.Errorf("ExistingTranslation = %q, %v; want 안녕, true", got, ok)
	}

	if err := file.AddTranslation("missing.key", "ko", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestMarkNoTranslateExcludesKey(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := file.MarkNoTranslate("plain.key"); err != nil {
		t.Fatalf("MarkNoTranslate returned error: %v", err)
	}

	for _, key := range file.KeysNeedingTranslation("ja", ModeFresh) {
		if key == "plain.key" {
			t.Error("marked key still selected for translation")
		}
	}

	if err := file.MarkNoTranslate("missing.key"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSourceText(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := file.SourceText("greeting.title"); got != "Welcome back, %@!" {
		t.Errorf("SourceText = %q, want source-language value", got)
	}
	// No en localization: the key itself is the source text.
	if got := file.SourceText("plain.key"); got != "plain.key" {
		t.Errorf("SourceText fallback = %q, want plain.key", got)
	}
	if got := file.SourceText("missing.key"); got != "missing.key" {
		t.Errorf("SourceText for unknown key = %q", got)
	}
}

func TestReferenceTranslations(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	refs := file.ReferenceTranslations("CFBundleDisplayName", "ja", 5)
	if len(refs) != 1 || refs["fr"] != "Widgets Horloge" {
		t.Errorf("refs = %v, want fr only", refs)
	}

	// The target language itself is never a reference.
	refs = file.ReferenceTranslations("CFBundleDisplayName", "fr", 5)
	if _, ok := refs["fr"]; ok {
		t.Error("target language leaked into references")
	}

	if refs := file.ReferenceTranslations("plain.key", "ja", 5); refs != nil {
		t.Errorf("expected no references, got %v", refs)
	}
}

func TestTranslatedCount(t *testing.T) {
	file, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := file.TranslatedCount("fr"); got != 1 {
		t.Errorf("TranslatedCount(fr) = %d, want 1", got)
	}
	// Empty values do not count.
	if got := file.TranslatedCount("ja"); got != 0 {
		t.Errorf("TranslatedCount(ja) = %d, want 0", got)
	}
}

func TestCreateBackup(t *testing.T) {
	path := writeSample(t)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	backupPath, err := file.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup returned error: %v", err)
	}

	base := filepath.Base(backupPath)
	if !strings.Contains(base, ".xcstrings.backup_") {
		t.Errorf("backup name %q missing .xcstrings.backup_ marker", base)
	}
	if filepath.Dir(backupPath) != filepath.Dir(path) {
		t.Errorf("backup written outside source directory: %s", backupPath)
	}

	backup, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(backup) != sampleCatalog {
		t.Error("backup content differs from source file")
	}
}

func TestDetectWalksUp(t *testing.T) {
	root := t.TempDir()
	resources := filepath.Join(root, "Shared", "Resources")
	if err := os.MkdirAll(resources, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	catalogPath := filepath.Join(resources, "Localizable.xcstrings")
	if err := os.WriteFile(catalogPath, []byte(sampleCatalog), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	nested := filepath.Join(root, "App", "Sources", "Views")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := Detect(nested)
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if found != catalogPath {
		t.Errorf("Detect = %q, want %q", found, catalogPath)
	}
}

func TestDetectPrefersCatalogInStartDir(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "Localizable.xcstrings")
	if err := os.WriteFile(catalogPath, []byte(sampleCatalog), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	found, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if found != catalogPath {
		t.Errorf("Detect = %q, want %q", found, catalogPath)
	}
}

func TestDetectNotFound(t *testing.T) {
	if _, err := Detect(t.TempDir()); err == nil {
		t.Error("expected error when nothing to detect")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "supplement", input: "supplement", want: ModeSupplement},
		{name: "fresh", input: "fresh", want: ModeFresh},
		{name: "mixed case", input: "Fresh", want: ModeFresh},
		{name: "unknown", input: "everything", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
