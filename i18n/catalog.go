package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale.
var BaseLocale = language.AmericanEnglish

var (
	// ErrNoLocales is returned when a filesystem holds no locale files.
	ErrNoLocales = errors.New("i18n: no locale files found")

	// ErrMissingBase is returned when the base locale is absent.
	ErrMissingBase = errors.New("i18n: base locale missing")

	// ErrKeyMismatch is returned when a locale's key set differs from the base locale.
	ErrKeyMismatch = errors.New("i18n: locale keys differ from base locale")
)

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog is an immutable set of localized messages.
type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag // tags[0] is BaseLocale
	matcher language.Matcher
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

var defaultCatalog = mustLoad(embeddedFS)

func mustLoad(fsys fs.FS) *Catalog {
	c, err := Load(fsys)
	if err != nil {
		panic(err)
	}

	return c
}

// Default returns the process-wide catalog built from the embedded locales.
func Default() *Catalog {
	return defaultCatalog
}

// Load reads every locales/*.yaml file in fsys into a new Catalog.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoLocales
	}
	sort.Strings(paths)

	files := make(map[string]map[string]string, len(paths)) // keyed by canonical tag string
	parsed := make(map[string]language.Tag, len(paths))
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var lf localeFile
		if err := yaml.Unmarshal(raw, &lf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if lf.Locale == "" {
			lf.Locale = strings.TrimSuffix(path.Base(p), path.Ext(p))
		}
		tag, err := language.Parse(lf.Locale)
		if err != nil {
			return nil, fmt.Errorf("%s: locale %q: %w", p, lf.Locale, err)
		}
		files[tag.String()] = lf.Messages
		parsed[tag.String()] = tag
	}

	baseKey := BaseLocale.String()
	base, ok := files[baseKey]
	if !ok {
		return nil, ErrMissingBase
	}

	others := make([]string, 0, len(files)-1)
	for key := range files {
		if key != baseKey {
			others = append(others, key)
		}
	}
	sort.Strings(others)

	b := catalog.NewBuilder(catalog.Fallback(BaseLocale))
	tags := []language.Tag{BaseLocale}
	for _, key := range others {
		tags = append(tags, parsed[key])
	}

	for _, tag := range tags {
		msgs := files[tag.String()]
		if err := sameKeys(base, msgs); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: set %q: %w", tag, key, err)
			}
		}
	}

	return &Catalog{builder: b, tags: tags, matcher: language.NewMatcher(tags)}, nil
}

// sameKeys reports ErrKeyMismatch naming the first key present in only one map.
func sameKeys(base, other map[string]string) error {
	for key := range base {
		if _, ok := other[key]; !ok {
			return fmt.Errorf("missing %q: %w", key, ErrKeyMismatch)
		}
	}
	for key := range other {
		if _, ok := base[key]; !ok {
			return fmt.Errorf("unknown %q: %w", key, ErrKeyMismatch)
		}
	}

	return nil
}

// Languages returns the supported locales, base locale first.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Match returns the supported locale closest to want (BaseLocale when nothing matches).
func (c *Catalog) Match(want language.Tag) language.Tag {
	_, idx, _ := c.matcher.Match(want)

	return c.tags[idx]
}

// Printer returns a message printer for the supported locale closest to want.
func (c *Catalog) Printer(want language.Tag) *message.Printer {
	return message.NewPrinter(c.Match(want), message.Catalog(c.builder))
}

// Sprintf formats the message key for want with args.
func (c *Catalog) Sprintf(want language.Tag, key string, args ...any) string {
	return c.Printer(want).Sprintf(key, args...)
}
