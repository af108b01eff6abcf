package router

import (
	"strings"

	"github.com/nikmy/classbook/pkg/errors"
)

type patternKind int

// Declaration order is match priority.
const (
	kindExact patternKind = iota
	kindPrefix
	kindInfix
)

// pattern is a path with at most one "{name}" segment. A trailing
// segment captures everything after the prefix, a middle one captures
// what lies between the prefix and the suffix.
type pattern struct {
	raw    string
	kind   patternKind
	prefix string
	suffix string
	param  string
}

func compilePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, errors.Errorf("pattern %q must start with /", raw)
	}

	open := strings.IndexByte(raw, '{')
	if open < 0 {
		if strings.ContainsRune(raw, '}') {
			return pattern{}, errors.Errorf("pattern %q has unbalanced braces", raw)
		}
		return pattern{raw: raw, kind: kindExact, prefix: raw}, nil
	}

	closing := strings.IndexByte(raw[open:], '}')
	if closing < 0 {
		return pattern{}, errors.Errorf("pattern %q has unbalanced braces", raw)
	}
	closing += open

	p := pattern{
		raw:    raw,
		prefix: raw[:open],
		param:  raw[open+1 : closing],
		suffix: raw[closing+1:],
	}

	switch {
	case p.param == "":
		return pattern{}, errors.Errorf("pattern %q has an unnamed segment", raw)
	case strings.ContainsAny(p.suffix, "{}"):
		return pattern{}, errors.Errorf("pattern %q has more than one segment", raw)
	case !strings.HasSuffix(p.prefix, "/"):
		return pattern{}, errors.Errorf("segment in %q must follow a /", raw)
	case p.suffix != "" && !strings.HasPrefix(p.suffix, "/"):
		return pattern{}, errors.Errorf("segment in %q must be followed by a /", raw)
	}

	p.kind = kindPrefix
	if p.suffix != "" {
		p.kind = kindInfix
	}
	return p, nil
}

func (p pattern) match(path string) (Params, bool) {
	switch p.kind {
	case kindExact:
		return nil, path == p.raw
	case kindPrefix:
		if !strings.HasPrefix(path, p.prefix) {
			return nil, false
		}
		return Params{p.param: path[len(p.prefix):]}, true
	default:
		if len(path) < len(p.prefix)+len(p.suffix) ||
			!strings.HasPrefix(path, p.prefix) ||
			!strings.HasSuffix(path, p.suffix) {
			return nil, false
		}
		return Params{p.param: path[len(p.prefix) : len(path)-len(p.suffix)]}, true
	}
}
