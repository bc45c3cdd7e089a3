package domain

import "strconv"

// Record is a loosely-typed CMS entry. The content provider returns these
// as-is; nothing outside the accessors below assumes a fixed schema.
type Record map[string]any

// String returns the value under key if it is a string, or "".
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the numeric value under key. JSON numbers decode as
// float64, but entries sometimes carry numbers as strings.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// Strings returns the value under key as a list of strings. CMS select
// options arrive either as a JSON array or as a map of value -> label.
func (r Record) Strings(key string) []string {
	switch v := r[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case map[string]any:
		out := make([]string, 0, len(v))
		for k := range v {
			out = append(out, k)
		}
		return out
	}
	return nil
}

// Has reports whether the record carries the key at all.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
