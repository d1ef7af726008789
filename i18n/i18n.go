// Package i18n holds the language packs and the per-application language
// selection.
package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when nothing else selects a pack.
const DefaultLanguage = "RU"

// Table is one language pack: a key to display-string mapping.
type Table struct {
	Code    string            `yaml:"code"`
	Name    string            `yaml:"name"`
	Tag     string            `yaml:"tag"`
	Strings map[string]string `yaml:"strings"`
}

// T returns the string for key, or the key itself when the pack lacks it.
func (t *Table) T(key string) string {
	if t == nil {
		return key
	}
	if val, ok := t.Strings[key]; ok {
		return val
	}
	return key
}

// Format renders the template stored under key with args. A missing key
// renders as the key itself.
func (t *Table) Format(key string, args ...any) string {
	if t == nil {
		return key
	}
	tmpl, ok := t.Strings[key]
	if !ok {
		return key
	}
	return fmt.Sprintf(tmpl, args...)
}

// Fields splits a space separated list stored under key.
func (t *Table) Fields(key string) []string {
	return strings.Fields(t.T(key))
}

// ParseTable decodes a YAML language pack.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&t); err != nil {
		return nil, errors.Wrap(err, "decode language pack")
	}
	if t.Code == "" {
		return nil, errors.New("language pack has no code")
	}
	t.Code = strings.ToUpper(t.Code)
	if t.Name == "" {
		t.Name = t.Code
	}
	return &t, nil
}

// Catalog is the set of available language packs, in a stable order.
type Catalog struct {
	tables map[string]*Table
	order  []string
}

// NewCatalog builds a catalog from tables. Codes must be unique.
func NewCatalog(tables ...*Table) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]*Table)}
	for _, t := range tables {
		if _, dup := c.tables[t.Code]; dup {
			return nil, errors.Errorf("duplicate language pack %q", t.Code)
		}
		c.tables[t.Code] = t
		c.order = append(c.order, t.Code)
	}
	sort.Strings(c.order)
	return c, nil
}

// LoadCatalog parses the language packs embedded in the binary.
func LoadCatalog() (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, errors.Wrap(err, "list language packs")
	}

	var tables []*Table
	for _, entry := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", entry.Name())
		}
		t, err := ParseTable(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", entry.Name())
		}
		tables = append(tables, t)
	}
	return NewCatalog(tables...)
}

// Codes returns the language codes in display order.
func (c *Catalog) Codes() []string {
	return append([]string(nil), c.order...)
}

// Table returns the pack for code (case-insensitive).
func (c *Catalog) Table(code string) (*Table, bool) {
	t, ok := c.tables[strings.ToUpper(strings.TrimSpace(code))]
	return t, ok
}

// Detect picks the pack that best matches the given locale values, such as
// "ru_RU.UTF-8" from $LANG or a plain "en". Empty and POSIX values are
// skipped. It returns false when nothing matches.
func (c *Catalog) Detect(values ...string) (string, bool) {
	var wanted []language.Tag
	for _, v := range values {
		v = strings.TrimSpace(v)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			continue
		}
		wanted = append(wanted, tag)
	}
	if len(wanted) == 0 {
		return "", false
	}

	supported := make([]language.Tag, 0, len(c.order))
	codes := make([]string, 0, len(c.order))
	for _, code := range c.order {
		tag, err := language.Parse(c.tables[code].Tag)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		codes = append(codes, code)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, idx, conf := language.NewMatcher(supported).Match(wanted...)
	if conf == language.No {
		return "", false
	}
	return codes[idx], true
}

type subscriber struct {
	id int
	fn func()
}

// Localizer is the application's language context. It owns the current
// selection and tells subscribers when it changes. It is not safe for
// concurrent use; the UI loop is its only caller.
type Localizer struct {
	catalog *Catalog
	current *Table
	subs    []subscriber
	nextID  int
}

// NewLocalizer returns a localizer with code selected.
func NewLocalizer(catalog *Catalog, code string) (*Localizer, error) {
	t, ok := catalog.Table(code)
	if !ok {
		return nil, errors.Errorf("unknown language %q (available: %s)", code, strings.Join(catalog.Codes(), ", "))
	}
	return &Localizer{catalog: catalog, current: t}, nil
}

// Catalog returns the packs the localizer selects from.
func (l *Localizer) Catalog() *Catalog { return l.catalog }

// Language returns the selected language code.
func (l *Localizer) Language() string { return l.current.Code }

// Table returns the selected pack.
func (l *Localizer) Table() *Table { return l.current }

// T looks key up in the selected pack.
func (l *Localizer) T(key string) string { return l.current.T(key) }

// Format renders the template under key in the selected pack.
func (l *Localizer) Format(key string, args ...any) string { return l.current.Format(key, args...) }

// SetLanguage selects code and notifies every subscriber in subscription
// order. Selecting the current language notifies as well.
func (l *Localizer) SetLanguage(code string) error {
	t, ok := l.catalog.Table(code)
	if !ok {
		return errors.Errorf("unknown language %q", code)
	}
	l.current = t
	for _, s := range append([]subscriber(nil), l.subs...) {
		s.fn()
	}
	return nil
}

// Subscribe registers fn to run after every language change. The returned
// function removes the subscription.
func (l *Localizer) Subscribe(fn func()) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.subs = append(l.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}
