// Package i18n loads the translation tables once at startup into an
// immutable lookup that is injected where needed, instead of living as a
// mutable module-level dictionary.
package i18n

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Translator struct {
	defaultLang string
	tables      map[string]map[string]string
}

// Load reads the translations file (language -> key -> text). The
// returned Translator never changes after construction.
func Load(path, defaultLang string) (*Translator, error) {
	v := viper.New()
	dir, file := filepath.Split(path)
	name := strings.TrimSuffix(file, filepath.Ext(file))
	v.AddConfigPath(dir)
	v.SetConfigName(name)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	raw := map[string]map[string]string{}
	if err := v.UnmarshalKey("languages", &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no languages defined in %s", path)
	}
	if _, ok := raw[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q missing from %s", defaultLang, path)
	}

	// Copy so later viper reloads cannot mutate the tables.
	tables := make(map[string]map[string]string, len(raw))
	for lang, entries := range raw {
		table := make(map[string]string, len(entries))
		for k, t := range entries {
			table[k] = t
		}
		tables[lang] = table
	}

	return &Translator{defaultLang: defaultLang, tables: tables}, nil
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Languages lists the loaded language codes.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.tables))
	for lang := range t.tables {
		langs = append(langs, lang)
	}
	return langs
}

// Lookup resolves key for lang, falling back to the default language and
// finally to the key itself so a missing entry never breaks a caller.
func (t *Translator) Lookup(lang, key string) string {
	if table, ok := t.tables[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := t.tables[t.defaultLang][key]; ok {
		return text
	}
	return key
}

// Table returns a copy of the full table for lang.
func (t *Translator) Table(lang string) (map[string]string, error) {
	table, ok := t.tables[lang]
	if !ok {
		return nil, fmt.Errorf("unknown language %q", lang)
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, nil
}
