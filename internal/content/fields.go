package content

import (
	"strings"
	"unicode"
)

// Fields reads a section data bag. Every lookup tries the kebab-case key
// first and the camelCase key second; a missing or wrong-typed value falls
// through to the next candidate and finally to the caller's default.
type Fields map[string]interface{}

// Link is a labelled URL from a list editor.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (f Fields) candidates(key string) []interface{} {
	keys := []string{KebabCase(key), CamelCase(key)}
	if keys[0] == keys[1] {
		keys = keys[:1]
	}
	var out []interface{}
	for _, k := range keys {
		if v, ok := f[k]; ok && v != nil {
			out = append(out, v)
		}
	}
	return out
}

// String returns the first non-blank string value for key.
func (f Fields) String(key, def string) string {
	for _, v := range f.candidates(key) {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return def
}

// HTML returns rich text as stored. It is not sanitized here; the admin
// editor is the authoring boundary.
func (f Fields) HTML(key, def string) string {
	for _, v := range f.candidates(key) {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return def
}

// Bool returns the first boolean-like value for key.
func (f Fields) Bool(key string, def bool) bool {
	for _, v := range f.candidates(key) {
		if b, ok := parseBool(v); ok {
			return b
		}
	}
	return def
}

// List reads a list field whose items are bare strings or {text} objects.
// An array, even an empty one, is authoritative; anything else yields def.
func (f Fields) List(key string, def []string) []string {
	for _, v := range f.candidates(key) {
		items, ok := asSlice(v)
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(itemText(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return append([]string(nil), def...)
}

// Links reads a list of {label|text, url|href|link} objects. Bare string
// items are used as both label and URL.
func (f Fields) Links(key string, def []Link) []Link {
	for _, v := range f.candidates(key) {
		items, ok := asSlice(v)
		if !ok {
			continue
		}
		out := make([]Link, 0, len(items))
		for _, item := range items {
			var l Link
			switch t := item.(type) {
			case string:
				l = Link{Label: strings.TrimSpace(t), URL: strings.TrimSpace(t)}
			case map[string]interface{}:
				inner := Fields(t)
				l = Link{
					Label: inner.String("label", inner.String("text", "")),
					URL:   inner.String("url", inner.String("href", inner.String("link", ""))),
				}
			}
			if l.URL == "" {
				continue
			}
			if l.Label == "" {
				l.Label = l.URL
			}
			out = append(out, l)
		}
		return out
	}
	return append([]Link(nil), def...)
}

func itemText(item interface{}) string {
	switch t := item.(type) {
	case string:
		return t
	case map[string]interface{}:
		if s, ok := t["text"].(string); ok {
			return s
		}
	}
	return ""
}

func asSlice(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case []interface{}:
		return t, true
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// KebabCase converts heroImage or hero_image to hero-image.
func KebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == ' ':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelCase converts hero-image to heroImage.
func CamelCase(s string) string {
	var b strings.Builder
	upper := false
	for _, r := range s {
		if r == '-' || r == '_' || r == ' ' {
			upper = b.Len() > 0
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
