// Package i18n renders notification messages in the supported languages.
// The catalog is embedded at build time.
package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"budgetly/internal/models"
)

// DefaultLanguage is used when a requested language has no catalog entry.
const DefaultLanguage = "en"

//go:embed messages.toml
var catalogData []byte

// Catalog holds notification templates per language.
type Catalog struct {
	messages map[string]map[string]string
	fallback string
}

// Load parses the embedded catalog. fallback is used for unknown languages
// and falls back to English itself when it is not in the catalog.
func Load(fallback string) (*Catalog, error) {
	return Parse(catalogData, fallback)
}

// Parse builds a catalog from TOML data.
func Parse(data []byte, fallback string) (*Catalog, error) {
	var messages map[string]map[string]string
	if _, err := toml.Decode(string(data), &messages); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}
	if _, ok := messages[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("message catalog has no %q section", DefaultLanguage)
	}

	c := &Catalog{messages: messages, fallback: DefaultLanguage}
	c.fallback = c.Resolve(fallback)
	return c, nil
}

// Languages returns the language codes in the catalog, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Resolve picks the catalog language for a requested tag such as "hi",
// "ta-IN" or an Accept-Language header value.
func (c *Catalog) Resolve(requested string) string {
	for _, part := range strings.Split(requested, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if _, ok := c.messages[base]; ok {
			return base
		}
	}
	if c.fallback == "" {
		return DefaultLanguage
	}
	return c.fallback
}

// Message renders n in lang, using English for any missing entry.
func (c *Catalog) Message(lang string, n models.Notification) string {
	lang = c.Resolve(lang)
	tmpl, ok := c.messages[lang][string(n.Kind)]
	if !ok {
		tmpl, ok = c.messages[DefaultLanguage][string(n.Kind)]
		if !ok {
			return string(n.Kind)
		}
	}

	replacements := []string{
		"{days}", strconv.Itoa(n.DaysRemaining),
		"{bill}", n.BillName,
	}
	if n.Amount != nil {
		replacements = append(replacements, "{amount}", n.Amount.StringFixed(2))
	}
	if n.Percent != nil {
		replacements = append(replacements, "{percent}", n.Percent.String())
	}
	return strings.NewReplacer(replacements...).Replace(tmpl)
}

// Localize returns a copy of notifications with Message filled in for lang.
func (c *Catalog) Localize(lang string, notifications []models.Notification) []models.Notification {
	out := make([]models.Notification, len(notifications))
	for i, n := range notifications {
		n.Message = c.Message(lang, n)
		out[i] = n
	}
	return out
}
