package keymap

import "strings"

// usage categories assigned to localization keys
const (
	CategorySystemPermission = "system_permission"
	CategoryAppMetadata      = "app_metadata"
	CategoryWidgetUI         = "widget_ui"
	CategoryUIElement        = "ui_element"
	CategoryUserMessage      = "user_message"
	CategoryGeneral          = "general"
)

// meanings of well-known iOS system keys
var keyMeanings = map[string]string{
	// Bundle keys
	"CFBundleDisplayName":        "App name shown on the home screen",
	"CFBundleName":               "App bundle name",
	"CFBundleShortVersionString": "App version number",
	"CFBundleVersion":            "App build number",

	// Privacy usage descriptions
	"NSCameraUsageDescription":                     "Camera permission explanation",
	"NSPhotoLibraryUsageDescription":               "Photo library access explanation",
	"NSPhotoLibraryAddUsageDescription":            "Explanation for adding photos to the library",
	"NSMicrophoneUsageDescription":                 "Microphone permission explanation",
	"NSLocationWhenInUseUsageDescription":          "Location-while-in-use permission explanation",
	"NSLocationAlwaysUsageDescription":             "Always-on location permission explanation",
	"NSLocationAlwaysAndWhenInUseUsageDescription": "Location permission explanation",
	"NSContactsUsageDescription":                   "Contacts access explanation",
	"NSCalendarsUsageDescription":                  "Calendar access explanation",
	"NSRemindersUsageDescription":                  "Reminders access explanation",
	"NSMotionUsageDescription":                     "Motion and fitness permission explanation",
	"NSHealthShareUsageDescription":                "Health data read permission explanation",
	"NSHealthUpdateUsageDescription":               "Health data write permission explanation",
	"NSBluetoothPeripheralUsageDescription":        "Bluetooth peripheral permission explanation",
	"NSBluetoothAlwaysUsageDescription":            "Bluetooth permission explanation",
	"NSAppleMusicUsageDescription":                 "Apple Music permission explanation",
	"NSSpeechRecognitionUsageDescription":          "Speech recognition permission explanation",
	"NSVideoSubscriberAccountUsageDescription":     "Video subscriber account permission explanation",
	"NSNetworkVolumesUsageDescription":             "Network volume access explanation",
	"NSDesktopFolderUsageDescription":              "Desktop folder access explanation",
	"NSDocumentsFolderUsageDescription":            "Documents folder access explanation",
	"NSDownloadsFolderUsageDescription":            "Downloads folder access explanation",
	"NSRemovableVolumesUsageDescription":           "Removable volume access explanation",

	// Widget configuration
	"CFBundleDisplayName_widget":           "Widget display name",
	"widget_description":                   "Widget description",
	"widget_configuration_intent_response": "Widget configuration response",

	// App Store metadata
	"APP_STORE_DESCRIPTION":   "App Store description",
	"APP_STORE_KEYWORDS":      "App Store keywords",
	"APP_STORE_RELEASE_NOTES": "App Store release notes",
}

// Meaning infers what a localization key is for. Exact matches against
// the known-key table win; otherwise substring patterns decide. Returns
// "" when nothing matches.
func Meaning(key string) string {
	if meaning, ok := keyMeanings[key]; ok {
		return meaning
	}

	lower := strings.ToLower(key)

	switch {
	case strings.Contains(lower, "usagedescription"):
		return "Privacy permission explanation"
	case strings.HasPrefix(lower, "cfbundle"):
		return "App bundle configuration"
	case strings.Contains(lower, "widget"):
		return "Widget configuration"
	case strings.Contains(lower, "config"), strings.Contains(lower, "setting"):
		return "Settings"
	case strings.Contains(lower, "error"), strings.Contains(lower, "fail"):
		return "Error message"
	case strings.Contains(lower, "success"), strings.Contains(lower, "complete"):
		return "Success message"
	case strings.Contains(lower, "button"), strings.Contains(lower, "btn"):
		return "Button label"
	case strings.Contains(lower, "alert"),
		strings.Contains(lower, "dialog"),
		strings.Contains(lower, "message"):
		return "User-facing message"
	case strings.Contains(lower, "nav"),
		strings.Contains(lower, "tab"),
		strings.Contains(lower, "menu"):
		return "Navigation menu"
	}

	return ""
}

// Category assigns a usage category to a key, used to pick an
// appropriate register in translation prompts.
func Category(key string) string {
	lower := strings.ToLower(key)

	switch {
	case strings.Contains(lower, "usagedescription"), strings.HasPrefix(lower, "ns"):
		return CategorySystemPermission
	case strings.HasPrefix(lower, "cfbundle"):
		return CategoryAppMetadata
	case strings.Contains(lower, "widget"):
		return CategoryWidgetUI
	case strings.Contains(lower, "button"), strings.Contains(lower, "label"):
		return CategoryUIElement
	case strings.Contains(lower, "error"), strings.Contains(lower, "alert"):
		return CategoryUserMessage
	default:
		return CategoryGeneral
	}
}

// CategoryDescription renders a category ID as prompt-ready text.
func CategoryDescription(category string) string {
	switch category {
	case CategorySystemPermission:
		return "system permission prompt"
	case CategoryAppMetadata:
		return "app metadata"
	case CategoryWidgetUI:
		return "widget interface"
	case CategoryUIElement:
		return "interface element"
	case CategoryUserMessage:
		return "user-facing message"
	default:
		return "general text"
	}
}
