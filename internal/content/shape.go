// Package content reads loosely typed page documents into stable view models.
//
// Stored payloads come in two shapes. Flat rows keep sections at the top
// level ({page, hero, welcome}); nested rows keep them under data
// ({page, data: {hero, welcome}}). ParseDocument detects the shape once and
// every read and write afterwards goes through the detected container.
package content

import (
	"strings"

	"github.com/ArowuTest/community-center-backend/internal/models"
)

// Shape tags the layout of a document payload.
type Shape int

const (
	ShapeFlat Shape = iota
	ShapeNested
)

func (s Shape) String() string {
	if s == ShapeNested {
		return "nested"
	}
	return "flat"
}

// Document is a parsed payload with its detected shape.
type Document struct {
	Page  string
	Shape Shape

	root      map[string]interface{}
	container map[string]interface{}
}

// ParseDocument inspects payload and records where sections live. A nil
// payload parses as an empty nested document.
func ParseDocument(payload map[string]interface{}) Document {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	page, _ := payload["page"].(string)
	if inner, ok := payload["data"].(map[string]interface{}); ok {
		return Document{Page: page, Shape: ShapeNested, root: payload, container: inner}
	}
	_, hasPage := payload["page"]
	if len(payload) == 0 || (len(payload) == 1 && hasPage) {
		// Nothing but the page id: new writes use the nested shape.
		return Document{Page: page, Shape: ShapeNested, root: payload, container: map[string]interface{}{}}
	}
	return Document{Page: page, Shape: ShapeFlat, root: payload, container: payload}
}

// FromModel parses the payload of a stored document. A nil document yields
// an empty one, which extracts to defaults.
func FromModel(doc *models.ContentDocument) Document {
	if doc == nil {
		return ParseDocument(nil)
	}
	d := ParseDocument(doc.Data)
	if d.Page == "" {
		d.Page = doc.PageName
	}
	return d
}

// NewPayload builds the payload of a brand new document.
func NewPayload(page string) map[string]interface{} {
	return map[string]interface{}{
		"page": page,
		"data": map[string]interface{}{},
	}
}

// Field returns a value stored beside the sections, checking the section
// container first and the payload root second.
func (d Document) Field(key string) (interface{}, bool) {
	if v, ok := d.container[key]; ok {
		return v, true
	}
	v, ok := d.root[key]
	return v, ok
}

// Section parses the named section.
func (d Document) Section(key string) models.SectionConfig {
	return ParseSection(d.container[key])
}

// Sections returns the keys present in the section container.
func (d Document) Sections() []string {
	keys := make([]string, 0, len(d.container))
	for k := range d.container {
		keys = append(keys, k)
	}
	return keys
}

// Payload returns a copy of the payload with the top-level maps cloned, so
// writes through the With* helpers never alias the parsed input.
func (d Document) Payload() map[string]interface{} {
	root := shallowCopy(d.root)
	if d.Shape == ShapeNested {
		root["data"] = shallowCopy(d.container)
	}
	if d.Page != "" {
		if _, ok := root["page"]; !ok {
			root["page"] = d.Page
		}
	}
	return root
}

func (d Document) withContainer(fn func(c map[string]interface{})) map[string]interface{} {
	payload := d.Payload()
	if d.Shape == ShapeNested {
		fn(payload["data"].(map[string]interface{}))
	} else {
		fn(payload)
	}
	return payload
}

// WithSection returns a payload where key holds cfg and every sibling key
// is untouched.
func (d Document) WithSection(key string, cfg models.SectionConfig) map[string]interface{} {
	return d.withContainer(func(c map[string]interface{}) {
		c[key] = cfg.ToMap()
	})
}

// WithField returns a payload with a plain value set beside the sections.
func (d Document) WithField(key string, value interface{}) map[string]interface{} {
	return d.withContainer(func(c map[string]interface{}) {
		c[key] = value
	})
}

// WithoutSectionField drops field from the section's data bag under both
// its kebab and camel spelling. changed is false when nothing was removed.
func (d Document) WithoutSectionField(section, field string) (payload map[string]interface{}, changed bool) {
	raw, ok := d.container[section].(map[string]interface{})
	if !ok {
		return d.Payload(), false
	}
	data, ok := raw["data"].(map[string]interface{})
	if !ok {
		return d.Payload(), false
	}

	keys := []string{KebabCase(field), CamelCase(field), field}
	next := shallowCopy(data)
	for _, k := range keys {
		if _, present := next[k]; present {
			delete(next, k)
			changed = true
		}
	}
	if !changed {
		return d.Payload(), false
	}

	sec := shallowCopy(raw)
	sec["data"] = next
	return d.withContainer(func(c map[string]interface{}) {
		c[section] = sec
	}), true
}

// ParseSection reads {enabled?, data?}. Enabled defaults to true; very old
// rows that keep fields directly on the section are read as data.
func ParseSection(raw interface{}) models.SectionConfig {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return models.SectionConfig{}
	}
	var cfg models.SectionConfig
	if v, present := m["enabled"]; present {
		if b, ok := parseBool(v); ok {
			cfg.Enabled = &b
		}
	}
	if data, ok := m["data"].(map[string]interface{}); ok {
		cfg.Data = data
		return cfg
	}
	if _, present := m["data"]; present {
		return cfg
	}
	rest := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k != "enabled" {
			rest[k] = v
		}
	}
	if len(rest) > 0 {
		cfg.Data = rest
	}
	return cfg
}

func parseBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "true", "1", "yes", "on":
			return true, true
		case "false", "0", "no", "off":
			return false, true
		}
	}
	return false, false
}

func shallowCopy(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
