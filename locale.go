package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lang/en_US.yaml
var defaultLocaleYAML []byte

type Locale struct {
	translations map[string]string
	locale       string
}

var globalLocale *Locale

// InitLocale initializes the global locale system. A lang/<locale>.yaml next
// to the executable overrides the embedded en_US table.
func InitLocale() error {
	locale := DetectSystemLocale()

	l, err := loadLocaleFile(locale)
	if err != nil {
		l, err = loadEmbeddedLocale()
		if err != nil {
			return fmt.Errorf("failed to load embedded locale: %w", err)
		}
	}

	globalLocale = l
	return nil
}

// DetectSystemLocale detects the user's system locale from the environment.
func DetectSystemLocale() string {
	for _, env := range []string{"LANG", "LC_ALL", "LC_MESSAGES"} {
		if locale := os.Getenv(env); locale != "" {
			// Typically "en_US.UTF-8"; strip the encoding suffix.
			if base, _, _ := strings.Cut(locale, "."); base != "" {
				return base
			}
		}
	}
	return "en_US"
}

func loadLocaleFile(locale string) (*Locale, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	localeFile := filepath.Join(filepath.Dir(exePath), "lang", locale+".yaml")
	data, err := os.ReadFile(localeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", localeFile, err)
	}

	return parseLocale(locale, data)
}

func loadEmbeddedLocale() (*Locale, error) {
	return parseLocale("en_US", defaultLocaleYAML)
}

func parseLocale(locale string, data []byte) (*Locale, error) {
	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse locale %s: %w", locale, err)
	}

	return &Locale{
		translations: translations,
		locale:       locale,
	}, nil
}

// T translates a key with optional fmt parameters. Unknown keys come back
// verbatim so a missing translation never hides a message entirely.
func T(key string, params ...interface{}) string {
	if globalLocale == nil {
		return key
	}

	translation, ok := globalLocale.translations[key]
	if !ok {
		return key
	}

	if len(params) > 0 {
		return fmt.Sprintf(translation, params...)
	}

	return translation
}

// GetLocale returns the current locale code (e.g., "en_US").
func GetLocale() string {
	if globalLocale == nil {
		return "en_US"
	}
	return globalLocale.locale
}
