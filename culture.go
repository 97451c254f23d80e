package nconvert

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_CH"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Culture holds the formatting conventions used to read numbers and
// dates.  The zero Culture behaves as Invariant.
type Culture struct {
	name    string
	decimal string
	group   string
	minus   string
	layouts []string
}

// Invariant reads numbers the way Go source does ("1234.5", with ","
// tolerated as a group separator) and dates in ISO 8601 forms.
var Invariant = Culture{
	name:    "invariant",
	decimal: ".",
	group:   ",",
	minus:   "-",
}

var invariantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// reference is Go's layout reference time.  Formatting it with a
// locale produces text that is also a valid Go layout whenever the
// locale uses numeric fields only.
var reference = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

// NewCulture builds a culture from explicit symbols.  Layouts use
// Go's reference-time notation and are tried before the ISO forms.
func NewCulture(name, decimal, group, minus string, layouts ...string) (Culture, error) {
	switch {
	case decimal == "":
		return Culture{}, errors.Errorf("culture %s: decimal separator must not be empty", name)
	case decimal == group:
		return Culture{}, errors.Errorf("culture %s: decimal and group separators are both %q", name, decimal)
	case minus == "":
		return Culture{}, errors.Errorf("culture %s: minus sign must not be empty", name)
	case strings.ContainsAny(decimal+group+minus, "0123456789"):
		return Culture{}, errors.Errorf("culture %s: separators must not contain digits", name)
	}
	for _, layout := range layouts {
		if !roundTrips(layout) {
			return Culture{}, errors.Errorf("culture %s: %q is not a usable date layout", name, layout)
		}
	}
	return Culture{
		name:    name,
		decimal: decimal,
		group:   group,
		minus:   minus,
		layouts: layouts,
	}, nil
}

// FromTranslator derives a culture from a go-playground locale by
// formatting known values and reading the symbols back out.  Anything
// that cannot be recovered keeps its invariant default.
func FromTranslator(t locales.Translator) Culture {
	c := Culture{
		name:    t.Locale(),
		decimal: Invariant.decimal,
		group:   Invariant.group,
		minus:   Invariant.minus,
	}
	if decimal, group, ok := separators(t.FmtNumber(1234567.5, 1)); ok {
		c.decimal, c.group = decimal, group
	}
	if minus := strings.TrimSuffix(t.FmtNumber(-1, 0), "1"); minus != "" && !strings.ContainsAny(minus, "0123456789") {
		c.minus = minus
	}
	date := t.FmtDateShort(reference)
	for _, layout := range []string{
		date,
		date + " " + t.FmtTimeMedium(reference),
		date + " " + t.FmtTimeShort(reference),
	} {
		c.layouts = appendLayout(c.layouts, layout)
		if strings.Contains(layout, "06") && !strings.Contains(layout, "2006") {
			c.layouts = appendLayout(c.layouts, strings.Replace(layout, "06", "2006", 1))
		}
	}
	debugf("culture %s: decimal %q group %q minus %q layouts %q", c.name, c.decimal, c.group, c.minus, c.layouts)
	return c
}

func appendLayout(layouts []string, layout string) []string {
	if !roundTrips(layout) {
		debugf("culture: discarding layout %q", layout)
		return layouts
	}
	for _, l := range layouts {
		if l == layout {
			return layouts
		}
	}
	return append(layouts, layout)
}

func roundTrips(layout string) bool {
	want := reference.Format(layout)
	got, err := time.Parse(layout, want)
	if err != nil {
		return false
	}
	return got.Format(layout) == want && got.Year() == reference.Year()
}

// separators pulls the decimal and group symbols out of 1234567.5
// as formatted by a locale.
func separators(s string) (decimal string, group string, ok bool) {
	if !strings.HasPrefix(s, "1") || !strings.HasSuffix(s, "5") {
		return "", "", false
	}
	i := strings.Index(s, "234")
	j := strings.LastIndex(s, "567")
	if i < 1 || j < i+3 || j+3 > len(s)-1 {
		return "", "", false
	}
	group = s[1:i]
	if s[i+3:j] != group {
		return "", "", false
	}
	decimal = s[j+3 : len(s)-1]
	if decimal == "" || decimal == group {
		return "", "", false
	}
	return decimal, group, true
}

func (c Culture) orInvariant() Culture {
	if c.decimal == "" {
		return Invariant
	}
	return c
}

func (c Culture) Name() string { return c.orInvariant().name }

func (c Culture) DecimalSeparator() string { return c.orInvariant().decimal }

func (c Culture) GroupSeparator() string { return c.orInvariant().group }

func (c Culture) MinusSign() string { return c.orInvariant().minus }

// Layouts returns the date layouts tried for this culture, in order,
// including the invariant ISO forms that every culture accepts.
func (c Culture) Layouts() []string {
	c = c.orInvariant()
	all := make([]string, 0, len(c.layouts)+len(invariantLayouts))
	all = append(all, c.layouts...)
	return append(all, invariantLayouts...)
}

func (c Culture) String() string { return c.Name() }

type cultureTable struct {
	translator *ut.UniversalTranslator
	names      []string
	byLocale   map[string]Culture
}

var (
	builtinOnce sync.Once
	builtin     cultureTable
)

func builtinCultures() *cultureTable {
	builtinOnce.Do(func() {
		all := []locales.Translator{
			en.New(), en_US.New(), en_GB.New(),
			de.New(), de_DE.New(), de_CH.New(),
			fr.New(), fr_FR.New(),
			es.New(), es_ES.New(),
			it.New(), nl.New(), pl.New(), pt_BR.New(),
			ru.New(), sv.New(), ja.New(),
		}
		builtin.translator = ut.New(all[0], all...)
		builtin.byLocale = make(map[string]Culture, len(all))
		for _, t := range all {
			builtin.names = append(builtin.names, t.Locale())
			builtin.byLocale[t.Locale()] = FromTranslator(t)
		}
		sort.Strings(builtin.names)
	})
	return &builtin
}

// Cultures lists the names accepted by LookupCulture, besides the
// invariant aliases.
func Cultures() []string {
	names := builtinCultures().names
	r := make([]string, len(names))
	copy(r, names)
	return r
}

// LookupCulture finds a built-in culture by name.  Names may be BCP 47
// tags ("de-CH") or POSIX locale names ("de_CH.UTF-8").  "", "C",
// "POSIX", and "invariant" select Invariant.  A region that is not
// built in falls back to its language.
func LookupCulture(name string) (Culture, error) {
	trimmed := name
	if i := strings.IndexAny(trimmed, ".@"); i != -1 {
		trimmed = trimmed[:i]
	}
	switch strings.ToLower(trimmed) {
	case "", "c", "posix", "invariant":
		return Invariant, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return Culture{}, errors.Wrapf(ErrUnknownCulture, "%s: %s", name, err)
	}
	base, _ := tag.Base()
	candidates := make([]string, 0, 2)
	if region, confidence := tag.Region(); confidence == language.Exact {
		candidates = append(candidates, base.String()+"_"+region.String())
	}
	candidates = append(candidates, base.String())

	table := builtinCultures()
	t, found := table.translator.FindTranslator(candidates...)
	if !found {
		return Culture{}, errors.Wrap(ErrUnknownCulture, name)
	}
	debug("lookup culture", name, "->", t.Locale())
	return table.byLocale[t.Locale()], nil
}
