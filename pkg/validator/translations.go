package validator

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var defaultTranslations []byte

// Translations maps a language to its nested message templates, keyed the same
// way as ValidationError.TranslationKey ("validation.ascii_printable" resolves
// to validation -> ascii_printable). Templates use %{name} placeholders filled
// from TranslationValues.
type Translations map[string]map[string]any

// ParseTranslations decodes a YAML document whose top-level keys are languages.
func ParseTranslations(data []byte) (Translations, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidTranslations, err)
	}

	result := make(Translations, len(raw))
	for lang, val := range raw {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidTranslations, lang, val)
		}
		result[lang] = m
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidTranslations)
	}
	return result, nil
}

var loadDefaults = sync.OnceValue(func() Translations {
	t, err := ParseTranslations(defaultTranslations)
	if err != nil {
		panic(fmt.Sprintf("validator: embedded translations: %v", err))
	}
	return t
})

// DefaultTranslations returns the bundled English and German messages for the
// ASCII rules. The returned value is shared and must not be modified.
func DefaultTranslations() Translations {
	return loadDefaults()
}

// Languages returns the languages present, sorted.
func (t Translations) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Translate renders e in lang. When the language or key is missing it falls
// back to e.Message. Placeholders without a value are left as they are.
func (t Translations) Translate(lang string, e ValidationError) string {
	tmpl, ok := t.lookup(lang, e.TranslationKey)
	if !ok {
		return e.Message
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := e.TranslationValues[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// TranslateAll renders every error in lang, grouped by field.
func (t Translations) TranslateAll(lang string, errs ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], t.Translate(lang, e))
	}
	return out
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func (t Translations) lookup(lang, key string) (string, bool) {
	current, ok := t[lang]
	if !ok || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}
