// Package i18n provides localized message catalogs for error codes.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from the errors
// package as a string alias to avoid an import cycle).
type Code = string

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}
)

func init() {
	RegisterCatalog(BaseLocale, enUSCatalog)
}

// GetCatalog returns the best catalog for the given locale using BCP 47
// matching over the registered locales. Falls back to en-US when the
// locale is empty, malformed, or has no close registered match.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	resolved := matchLocale(requested)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}
	c, _ := lookupCatalog(BaseLocale)
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template for code with the given metadata.
// Falls back to the error code itself if no template is registered.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

// matchLocale resolves a requested locale against the registered set.
func matchLocale(requested string) string {
	catalogsMu.RLock()
	available := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		available = append(available, locale)
	}
	catalogsMu.RUnlock()

	tags := make([]language.Tag, 0, len(available))
	registered := make([]string, 0, len(available))
	for _, locale := range available {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		registered = append(registered, locale)
	}
	if len(tags) == 0 {
		return BaseLocale
	}

	wanted, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(wanted)
	if confidence == language.No {
		return BaseLocale
	}
	return registered[index]
}
