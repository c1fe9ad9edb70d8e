package xcstrings

import (
	"encoding/json"
)

// translation states recognized by Xcode
const (
	StateTranslated  = "translated"
	StateNeedsReview = "needs_review"
	StateStale       = "stale"
	StateNew         = "new"
)

// single translated value with its review state
type StringUnit struct {
	State string
	Value string

	extra map[string]json.RawMessage
}

// per-language translation of one key
type Localization struct {
	StringUnit      *StringUnit
	ShouldTranslate *bool

	extra map[string]json.RawMessage
}

// one catalog key with its comment and translations
type Entry struct {
	Comment         string
	ShouldTranslate *bool
	Localizations   map[string]*Localization

	extra map[string]json.RawMessage
}

// complete strings catalog
type Catalog struct {
	SourceLanguage string
	Version        string
	Strings        map[string]*Entry

	extra map[string]json.RawMessage
}

// Fields Xcode writes that this tool does not interpret (extractionState,
// variations, substitutions, ...) are kept in the extra maps so a
// load/mutate/save cycle never discards them.

func takeField(fields map[string]json.RawMessage, key string, v interface{}) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return err
	}
	delete(fields, key)
	return nil
}

func putField(fields map[string]json.RawMessage, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fields[key] = raw
	return nil
}

func keepExtra(fields map[string]json.RawMessage) map[string]json.RawMessage {
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func copyExtra(dst, src map[string]json.RawMessage) {
	for k, v := range src {
		dst[k] = v
	}
}

func (u *StringUnit) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if err := takeField(fields, "state", &u.State); err != nil {
		return err
	}
	if err := takeField(fields, "value", &u.Value); err != nil {
		return err
	}
	u.extra = keepExtra(fields)
	return nil
}

func (u *StringUnit) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(u.extra)+2)
	copyExtra(fields, u.extra)
	if err := putField(fields, "state", u.State); err != nil {
		return nil, err
	}
	if err := putField(fields, "value", u.Value); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func (l *Localization) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if err := takeField(fields, "stringUnit", &l.StringUnit); err != nil {
		return err
	}
	if err := takeField(fields, "shouldTranslate", &l.ShouldTranslate); err != nil {
		return err
	}
	l.extra = keepExtra(fields)
	return nil
}

func (l *Localization) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(l.extra)+2)
	copyExtra(fields, l.extra)
	if l.StringUnit != nil {
		if err := putField(fields, "stringUnit", l.StringUnit); err != nil {
			return nil, err
		}
	}
	if l.ShouldTranslate != nil {
		if err := putField(fields, "shouldTranslate", l.ShouldTranslate); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if err := takeField(fields, "comment", &e.Comment); err != nil {
		return err
	}
	if err := takeField(fields, "shouldTranslate", &e.ShouldTranslate); err != nil {
		return err
	}
	if err := takeField(fields, "localizations", &e.Localizations); err != nil {
		return err
	}
	e.extra = keepExtra(fields)
	return nil
}

func (e *Entry) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(e.extra)+3)
	copyExtra(fields, e.extra)
	if e.Comment != "" {
		if err := putField(fields, "comment", e.Comment); err != nil {
			return nil, err
		}
	}
	if e.ShouldTranslate != nil {
		if err := putField(fields, "shouldTranslate", e.ShouldTranslate); err != nil {
			return nil, err
		}
	}
	if len(e.Localizations) > 0 {
		if err := putField(fields, "localizations", e.Localizations); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if err := takeField(fields, "sourceLanguage", &c.SourceLanguage); err != nil {
		return err
	}
	if err := takeField(fields, "version", &c.Version); err != nil {
		return err
	}
	if err := takeField(fields, "strings", &c.Strings); err != nil {
		return err
	}
	if c.Strings == nil {
		c.Strings = make(map[string]*Entry)
	}
	c.extra = keepExtra(fields)
	return nil
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.extra)+3)
	copyExtra(fields, c.extra)
	if err := putField(fields, "sourceLanguage", c.SourceLanguage); err != nil {
		return nil, err
	}
	if err := putField(fields, "version", c.Version); err != nil {
		return nil, err
	}
	strs := c.Strings
	if strs == nil {
		strs = map[string]*Entry{}
	}
	if err := putField(fields, "strings", strs); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// true when the entry is excluded from translation, either at entry
// level or on any of its localizations
func (e *Entry) noTranslate() bool {
	if e.ShouldTranslate != nil && !*e.ShouldTranslate {
		return true
	}
	for _, loc := range e.Localizations {
		if loc != nil && loc.ShouldTranslate != nil && !*loc.ShouldTranslate {
			return true
		}
	}
	return false
}

func (e *Entry) translationFor(lang string) (string, bool) {
	loc, ok := e.Localizations[lang]
	if !ok || loc == nil || loc.StringUnit == nil {
		return "", false
	}
	if loc.StringUnit.Value == "" {
		return "", false
	}
	return loc.StringUnit.Value, true
}
