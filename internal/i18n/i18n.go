// Package i18n loads the embedded message catalogs used for every
// user-facing string in the TUI.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog resolves message IDs for one language, falling back to English.
type Catalog struct {
	loc *goi18n.Localizer
	tag language.Tag
}

// New builds a catalog for lang (a BCP 47 tag such as "en" or "fr-CA").
// An empty lang selects English.
func New(lang string) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parse language %q: %w", lang, err)
		}
		tag = t
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, path.Join("locales", f.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", f.Name(), err)
		}
	}

	return &Catalog{
		loc: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag: tag,
	}, nil
}

// T returns the message for id, or id itself if no catalog defines it.
func (c *Catalog) T(id string) string {
	s, err := c.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

// Tag is the language the catalog was requested for.
func (c *Catalog) Tag() language.Tag { return c.tag }
