package globe

import "strings"

// Settings is one candidate source of visual and behavioral configuration:
// a data point's overrides, a series' options, or the series group's
// defaults. Nested maps are addressed with dotted paths such as
// "label.color". Values decoded from JSON and values assembled in Go are
// both accepted; numeric values may be any integer or float kind.
type Settings map[string]any

// Lookup resolves a dotted path within the settings. It returns the value
// and true when every path segment exists and the final value is non-nil.
// Missing intermediate segments are tolerated and report absence.
func (s Settings) Lookup(path string) (any, bool) {
	if s == nil {
		return nil, false
	}
	cur := s
	for {
		key := path
		rest := ""
		if i := strings.IndexByte(path, '.'); i >= 0 {
			key, rest = path[:i], path[i+1:]
		}
		v, ok := cur[key]
		if !ok || v == nil {
			return nil, false
		}
		if rest == "" {
			return v, true
		}
		switch m := v.(type) {
		case Settings:
			cur = m
		case map[string]any:
			cur = Settings(m)
		default:
			return nil, false
		}
		path = rest
	}
}

// Resolve queries the candidate sources left to right and returns the first
// defined, non-nil value at the dotted path. Callers pass the most specific
// source first so that specific configuration always wins.
func Resolve(path string, sources ...Settings) (any, bool) {
	for _, src := range sources {
		if v, ok := src.Lookup(path); ok {
			return v, true
		}
	}
	return nil, false
}

// ResolveFloat resolves a numeric setting, accepting any integer or float
// kind. Sources that define the path with a non-numeric value are skipped.
func ResolveFloat(path string, def float64, sources ...Settings) float64 {
	for _, src := range sources {
		if v, ok := src.Lookup(path); ok {
			if f, ok := toFloat(v); ok {
				return f
			}
		}
	}
	return def
}

// ResolveString resolves a string setting.
func ResolveString(path string, def string, sources ...Settings) string {
	for _, src := range sources {
		if v, ok := src.Lookup(path); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return def
}

// ResolveBool resolves a boolean setting.
func ResolveBool(path string, def bool, sources ...Settings) bool {
	for _, src := range sources {
		if v, ok := src.Lookup(path); ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return def
}

// ResolveColor resolves a color setting. Values may be an RGBA, a hex
// string ("#RRGGBB" and friends), or a *RGBA.
func ResolveColor(path string, def RGBA, sources ...Settings) RGBA {
	for _, src := range sources {
		v, ok := src.Lookup(path)
		if !ok {
			continue
		}
		switch c := v.(type) {
		case RGBA:
			return c
		case *RGBA:
			if c != nil {
				return *c
			}
		case string:
			if parsed, ok := ParseHex(c); ok {
				return parsed
			}
		}
	}
	return def
}

// toFloat converts any integer or float kind to float64.
// Strings and other kinds do not coerce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
