package keymap

import "testing"

func TestMeaningKnownKeys(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"CFBundleDisplayName", "App name shown on the home screen"},
		{"NSCameraUsageDescription", "Camera permission explanation"},
		{"APP_STORE_KEYWORDS", "App Store keywords"},
		{"widget_description", "Widget description"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Meaning(tt.key); got != tt.want {
				t.Errorf("Meaning(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestMeaningPatterns(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"usage description", "NSFaceIDUsageDescription", "Privacy permission explanation"},
		{"bundle prefix", "CFBundleExecutable", "App bundle configuration"},
		{"widget", "some_custom_widget_title", "Widget configuration"},
		{"settings", "settings_sync_toggle", "Settings"},
		{"error", "network_error_title", "Error message"},
		{"success", "upload_complete_toast", "Success message"},
		{"button", "submit_button", "Button label"},
		{"alert", "logout_alert_body", "User-facing message"},
		{"navigation", "main_tab_home", "Navigation menu"},
		{"unknown", "totally_opaque", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Meaning(tt.key); got != tt.want {
				t.Errorf("Meaning(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// Exact table entries beat pattern rules.
func TestMeaningExactMatchWins(t *testing.T) {
	got := Meaning("NSCameraUsageDescription")
	if got != "Camera permission explanation" {
		t.Errorf("exact match lost to pattern rule: %q", got)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"NSCameraUsageDescription", CategorySystemPermission},
		{"nsfoo", CategorySystemPermission},
		{"CFBundleDisplayName", CategoryAppMetadata},
		{"widget_title", CategoryWidgetUI},
		{"save_button", CategoryUIElement},
		{"field_label", CategoryUIElement},
		{"sync_error_body", CategoryUserMessage},
		{"something_else", CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Category(tt.key); got != tt.want {
				t.Errorf("Category(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestCategoryDescriptionCoversAllCategories(t *testing.T) {
	categories := []string{
		CategorySystemPermission,
		CategoryAppMetadata,
		CategoryWidgetUI,
		CategoryUIElement,
		CategoryUserMessage,
		CategoryGeneral,
	}

	seen := make(map[string]bool)
	for _, category := range categories {
		desc := CategoryDescription(category)
		if desc == "" {
			t.Errorf("CategoryDescription(%q) is empty", category)
		}
		if seen[desc] {
			t.Errorf("CategoryDescription(%q) duplicates %q", category, desc)
		}
		seen[desc] = true
	}
}
