package main

import (
	"strings"
	"testing"
)

func TestEmbeddedLocaleLoads(t *testing.T) {
	locale, err := loadEmbeddedLocale()
	if err != nil {
		t.Fatalf("loadEmbeddedLocale: %v", err)
	}
	if locale.locale != "en_US" {
		t.Errorf("locale = %q, want en_US", locale.locale)
	}
	if len(locale.translations) == 0 {
		t.Fatal("embedded locale has no translations")
	}
	if _, ok := locale.translations["upload_accepted"]; !ok {
		t.Error("embedded locale missing upload_accepted")
	}
}

func TestTranslation(t *testing.T) {
	if err := InitLocale(); err != nil {
		t.Fatalf("InitLocale: %v", err)
	}

	if got := T("login_checking"); got == "login_checking" {
		t.Error("known key should translate, got the key back")
	}

	if got := T("no_such_key_anywhere"); got != "no_such_key_anywhere" {
		t.Errorf("unknown key should come back verbatim, got %q", got)
	}

	got := T("checkout_order_total", 24.99)
	if !strings.Contains(got, "24.99") {
		t.Errorf("parameterized translation = %q, want it to contain 24.99", got)
	}
}

func TestDetectSystemLocale(t *testing.T) {
	t.Setenv("LANG", "de_DE.UTF-8")
	t.Setenv("LC_ALL", "")
	if got := DetectSystemLocale(); got != "de_DE" {
		t.Errorf("DetectSystemLocale = %q, want de_DE", got)
	}

	t.Setenv("LANG", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	if got := DetectSystemLocale(); got != "en_US" {
		t.Errorf("DetectSystemLocale with no env = %q, want en_US fallback", got)
	}
}
