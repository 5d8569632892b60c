package i18n

import (
	"encoding/json"
	"io/fs"
	"path"
	"sort"
	"strings"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Locale() != DefaultLocale {
		t.Errorf("Locale() = %q, want %q", c.Locale(), DefaultLocale)
	}
	if got := c.T("icu:ContextMenu--button", nil); got != "Context menu" {
		t.Errorf("T(button) = %q", got)
	}
}

func TestLoadResolvesRegionAndPOSIXForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de", "de"},
		{"de-AT", "de"},
		{"de_DE.UTF-8", "de"},
		{"de_CH@euro", "de"},
		{"EN_us", "en"},
		{"fr", DefaultLocale},
		{"not a locale", DefaultLocale},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Load(tt.in)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", tt.in, err)
			}
			if c.Locale() != tt.want {
				t.Errorf("Load(%q).Locale() = %q, want %q", tt.in, c.Locale(), tt.want)
			}
		})
	}
}

func TestTSubstitutesAndPluralizes(t *testing.T) {
	tests := []struct {
		locale string
		key    string
		subs   map[string]string
		want   string
	}{
		{"en", "icu:stickers--StickerManager--Count", map[string]string{"count": "1"}, "1 sticker"},
		{"en", "icu:stickers--StickerManager--Count", map[string]string{"count": "12"}, "12 stickers"},
		{"de", "icu:stickers--StickerManager--Count", map[string]string{"count": "12"}, "12 Sticker"},
		{"en", "icu:stickers--StickerManager--Toast--Installed", map[string]string{"title": "Bandit"}, "Installed Bandit"},
		{"de", "icu:stickers--StickerManager--Toast--Installed", map[string]string{"title": "Bandit"}, "Bandit installiert"},
		{"de", "icu:stickers--StickerManager--Filter", nil, "Sets filtern"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.want, func(t *testing.T) {
			c, err := Load(tt.locale)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got := c.T(tt.key, tt.subs); got != tt.want {
				t.Errorf("T(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestTMissingKeyRendersKey(t *testing.T) {
	c, err := Load("de")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := c.T("icu:does-not-exist", nil); got != "icu:does-not-exist" {
		t.Errorf("missing key = %q, want the key", got)
	}
}

func TestLocales(t *testing.T) {
	got := Locales()
	if len(got) != 2 || got[0] != "de" || got[1] != "en" {
		t.Errorf("Locales() = %v, want [de en]", got)
	}
}

func readKeys(t *testing.T, file string) []string {
	t.Helper()
	data, err := locales.ReadFile(file)
	if err != nil {
		t.Fatalf("read %s: %v", file, err)
	}
	var msgs map[string]json.RawMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		t.Fatalf("parse %s: %v", file, err)
	}
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestEveryLocaleHasEveryKey(t *testing.T) {
	want := readKeys(t, "locales/active."+DefaultLocale+".json")

	files, err := fs.Glob(locales, "locales/*.json")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		t.Run(path.Base(f), func(t *testing.T) {
			have := map[string]bool{}
			for _, k := range readKeys(t, f) {
				have[k] = true
			}
			var missing []string
			for _, k := range want {
				if !have[k] {
					missing = append(missing, k)
				}
			}
			if len(missing) > 0 {
				t.Errorf("missing keys:\n%s", strings.Join(missing, "\n"))
			}
		})
	}
}
