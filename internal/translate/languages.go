package translate

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// English names for the language codes Apple projects commonly ship.
// Prompts read better with names than with raw codes.
var languageNames = map[string]string{
	"ja":      "Japanese",
	"zh-Hans": "Simplified Chinese",
	"zh-Hant": "Traditional Chinese",
	"ko":      "Korean",
	"fr":      "French",
	"de":      "German",
	"es":      "Spanish",
	"pt-PT":   "Portuguese (Portugal)",
	"pt-BR":   "Portuguese (Brazil)",
	"it":      "Italian",
	"ru":      "Russian",
	"ar":      "Arabic",
	"hi":      "Hindi",
	"tr":      "Turkish",
	"nl":      "Dutch",
	"pl":      "Polish",
	"sv":      "Swedish",
	"no":      "Norwegian",
	"da":      "Danish",
	"fi":      "Finnish",
	"cs":      "Czech",
	"ro":      "Romanian",
	"uk":      "Ukrainian",
	"el":      "Greek",
	"he":      "Hebrew",
	"id":      "Indonesian",
	"th":      "Thai",
	"vi":      "Vietnamese",
	"ml":      "Malayalam",

	// English variants
	"en-US": "English (United States)",
	"en-GB": "English (United Kingdom)",
	"en-AU": "English (Australia)",
	"en-CA": "English (Canada)",
	"en-NZ": "English (New Zealand)",
	"en-ZA": "English (South Africa)",
	"en-IN": "English (India)",
	"en-SG": "English (Singapore)",
	"en-HK": "English (Hong Kong)",
	"en-IE": "English (Ireland)",
}

// DisplayName renders a language code as an English name. Codes outside
// the table fall back to BCP 47 lookup, then to the raw code.
func DisplayName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	if tag, err := language.Parse(code); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	return code
}

// ValidateCode reports whether code is usable as a translation target.
func ValidateCode(code string) error {
	if code == "" {
		return fmt.Errorf("language code is required")
	}
	if _, ok := languageNames[code]; ok {
		return nil
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language code %q (examples: ja, zh-Hans, ko, fr)", code)
	}
	return nil
}
