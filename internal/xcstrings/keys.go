package xcstrings

import (
	"fmt"
	"sort"
	"strings"
)

// key selection strategy
type Mode string

const (
	// translate only keys missing a target-language value
	ModeSupplement Mode = "supplement"
	// retranslate every key
	ModeFresh Mode = "fresh"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeSupplement:
		return ModeSupplement, nil
	case ModeFresh:
		return ModeFresh, nil
	default:
		return "", fmt.Errorf(
			"invalid translation mode %q (use supplement or fresh)",
			s,
		)
	}
}

// KeysNeedingTranslation returns the keys to translate for the target
// language, sorted. Keys that are empty or excluded via shouldTranslate
// never qualify. Supplement mode additionally skips keys that already
// carry a non-empty target value.
func (f *File) KeysNeedingTranslation(targetLang string, mode Mode) []string {
	var keys []string
	for key, entry := range f.catalog.Strings {
		if strings.TrimSpace(key) == "" {
			continue
		}
		if entry == nil || entry.noTranslate() {
			continue
		}
		if mode == ModeSupplement {
			if _, ok := entry.translationFor(targetLang); ok {
				continue
			}
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SourceText returns the source-language value for a key. Catalogs
// commonly omit the source localization, in which case the key itself
// is the source text.
func (f *File) SourceText(key string) string {
	entry, ok := f.catalog.Strings[key]
	if !ok || entry == nil {
		return key
	}
	if value, ok := entry.translationFor(f.catalog.SourceLanguage); ok {
		return value
	}
	return key
}

// AddTranslation records a translated value for key in the given
// language, marking its state as translated.
func (f *File) AddTranslation(key, targetLang, translation string) error {
	entry, ok := f.catalog.Strings[key]
	if !ok || entry == nil {
		return fmt.Errorf("key not found: %s", key)
	}

	if entry.Localizations == nil {
		entry.Localizations = make(map[string]*Localization)
	}
	loc, ok := entry.Localizations[targetLang]
	if !ok || loc == nil {
		loc = &Localization{}
		entry.Localizations[targetLang] = loc
	}

	loc.StringUnit = &StringUnit{
		State: StateTranslated,
		Value: translation,
	}
	return nil
}

// MarkNoTranslate excludes a key from all future translation passes.
func (f *File) MarkNoTranslate(key string) error {
	entry, ok := f.catalog.Strings[key]
	if !ok || entry == nil {
		return fmt.Errorf("key not found: %s", key)
	}
	no := false
	entry.ShouldTranslate = &no
	return nil
}

// ExistingTranslation returns the current target-language value, if any.
func (f *File) ExistingTranslation(key, targetLang string) (string, bool) {
	entry, ok := f.catalog.Strings[key]
	if !ok || entry == nil {
		return "", false
	}
	return entry.translationFor(targetLang)
}

// Comment returns the translator note attached to a key.
func (f *File) Comment(key string) string {
	entry, ok := f.catalog.Strings[key]
	if !ok || entry == nil {
		return ""
	}
	return entry.Comment
}

// ReferenceTranslations collects up to max existing translations of key
// in languages other than excludeLang, for use as prompt context.
// Languages are visited in sorted order so results are deterministic.
func (f *File) ReferenceTranslations(
	key, excludeLang string,
	max int,
) map[string]string {
	entry, ok := f.catalog.Strings[key]
	if !ok || entry == nil || max <= 0 {
		return nil
	}

	langs := make([]string, 0, len(entry.Localizations))
	for lang := range entry.Localizations {
		if lang == excludeLang || lang == f.catalog.SourceLanguage {
			continue
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	refs := make(map[string]string)
	for _, lang := range langs {
		if len(refs) >= max {
			break
		}
		if value, ok := entry.translationFor(lang); ok {
			refs[lang] = value
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return refs
}

// StringCount reports the number of keys in the catalog.
func (f *File) StringCount() int {
	return len(f.catalog.Strings)
}

// TranslatedCount reports how many keys carry a non-empty value for the
// given language.
func (f *File) TranslatedCount(lang string) int {
	count := 0
	for _, entry := range f.catalog.Strings {
		if entry == nil {
			continue
		}
		if _, ok := entry.translationFor(lang); ok {
			count++
		}
	}
	return count
}
