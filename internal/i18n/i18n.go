// Package i18n loads the embedded message catalogs and renders localized
// strings with named placeholders.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// DefaultLocale is used when a locale has no catalog, and for keys a
// catalog is missing.
const DefaultLocale = "en"

var defaultTag = language.English

//go:embed locales/*.json
var locales embed.FS

// Catalog renders messages for one locale with DefaultLocale underneath.
type Catalog struct {
	locale    language.Tag
	localizer *goi18n.Localizer
}

func newBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.json")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", f, err)
		}
	}
	return bundle, nil
}

// supported lists the bundle's languages with the default first, which is
// what the matcher falls back to.
func supported(bundle *goi18n.Bundle) []language.Tag {
	tags := []language.Tag{defaultTag}
	for _, t := range bundle.LanguageTags() {
		if t != defaultTag {
			tags = append(tags, t)
		}
	}
	return tags
}

// Locales lists the embedded locales.
func Locales() []string {
	bundle, err := newBundle()
	if err != nil {
		return nil
	}
	var out []string
	for _, t := range supported(bundle) {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

// Load returns the catalog for locale. Region suffixes fall back to the base
// language ("de-AT" uses "de"), and unknown locales use DefaultLocale.
func Load(locale string) (*Catalog, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	tag := resolve(supported(bundle), locale)
	return &Catalog{
		locale:    tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), DefaultLocale),
	}, nil
}

func resolve(tags []language.Tag, locale string) language.Tag {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i] // POSIX forms like de_DE.UTF-8
	}
	want, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return tags[0]
	}
	_, i, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return tags[0]
	}
	return tags[i]
}

// Locale returns the resolved locale.
func (c *Catalog) Locale() string {
	return c.locale.String()
}

// T renders key with subs filling {{.name}} placeholders. A "count" entry
// also selects the plural form. Missing keys fall back to DefaultLocale and
// then to the key itself.
func (c *Catalog) T(key string, subs map[string]string) string {
	cfg := &goi18n.LocalizeConfig{MessageID: key}
	if len(subs) > 0 {
		cfg.TemplateData = subs
	}
	if n, ok := subs["count"]; ok {
		cfg.PluralCount = n
	}

	s, err := c.localizer.Localize(cfg)
	if err != nil {
		return key
	}
	return s
}
