package nconvert

import (
	"sort"
	"strconv"

	"github.com/muir/commonerrors"
	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

// CulturesFromFile reads culture definitions from a YAML or JSON file.
// The file has a top-level "cultures" map:
//
//	cultures:
//	  ops:
//	    base: de_CH        # optional, a built-in culture to start from
//	    decimal: "."
//	    group: "'"
//	    minus: "-"
//	    layouts:
//	      - "02.01.2006"
//
// Fields that are not given come from the base culture, or Invariant.
// Options pass through to
// https://pkg.go.dev/github.com/muir/nflex#UnmarshalFile
func CulturesFromFile(path string, opts ...nflex.UnmarshalFileArg) (map[string]Culture, error) {
	source, err := nflex.UnmarshalFile(path, opts...)
	if err != nil {
		return nil, commonerrors.ConfigurationError(errors.Wrap(err, path))
	}
	cultures, err := CulturesFromSource(source)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cultures, nil
}

// CulturesFromSource is CulturesFromFile for data that has already
// been loaded.
func CulturesFromSource(source nflex.Source) (map[string]Culture, error) {
	if !source.Exists("cultures") {
		return map[string]Culture{}, nil
	}
	names, err := source.Keys("cultures")
	if err != nil {
		return nil, commonerrors.ConfigurationError(errors.Wrap(err, "cultures"))
	}
	sort.Strings(names)
	cultures := make(map[string]Culture, len(names))
	for _, name := range names {
		c, err := cultureFromSource(name, source.Recurse("cultures", name))
		if err != nil {
			return nil, commonerrors.ConfigurationError(errors.Wrapf(err, "cultures.%s", name))
		}
		cultures[name] = c
	}
	return cultures, nil
}

func cultureFromSource(name string, source nflex.Source) (Culture, error) {
	if source == nil {
		return Culture{}, errors.New("missing definition")
	}
	base := Invariant
	if source.Exists("base") {
		baseName, err := source.GetString("base")
		if err != nil {
			return Culture{}, errors.Wrap(err, "base")
		}
		base, err = LookupCulture(baseName)
		if err != nil {
			return Culture{}, errors.Wrap(err, "base")
		}
	}
	get := func(key string, def string) (string, error) {
		if !source.Exists(key) {
			return def, nil
		}
		s, err := source.GetString(key)
		return s, errors.Wrap(err, key)
	}
	decimal, err := get("decimal", base.decimal)
	if err != nil {
		return Culture{}, err
	}
	group, err := get("group", base.group)
	if err != nil {
		return Culture{}, err
	}
	minus, err := get("minus", base.minus)
	if err != nil {
		return Culture{}, err
	}
	layouts := base.layouts
	if source.Exists("layouts") {
		length, err := source.Len("layouts")
		if err != nil {
			return Culture{}, errors.Wrap(err, "layouts")
		}
		layouts = make([]string, length)
		for i := 0; i < length; i++ {
			layouts[i], err = source.GetString("layouts", strconv.Itoa(i))
			if err != nil {
				return Culture{}, errors.Wrapf(err, "layouts[%d]", i)
			}
		}
	}
	return NewCulture(name, decimal, group, minus, layouts...)
}
