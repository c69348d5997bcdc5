package content

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var imageType = reflect.TypeOf(Image{})

// assertPopulated walks a view model and fails on any blank string or nil slice.
func assertPopulated(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.Ptr:
		require.False(t, v.IsNil(), path)
		assertPopulated(t, v.Elem(), path)
	case reflect.Struct:
		if v.Type() == imageType {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			assertPopulated(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.String:
		assert.NotEmpty(t, v.String(), path)
	case reflect.Slice:
		assert.False(t, v.IsNil(), path)
		assert.NotZero(t, v.Len(), path)
		for i := 0; i < v.Len(); i++ {
			assertPopulated(t, v.Index(i), path)
		}
	}
}

func TestExtractMalformedInputsYieldDefaults(t *testing.T) {
	payloads := map[string]map[string]interface{}{
		"nil":            nil,
		"empty":          {},
		"page only":      {"page": "x"},
		"data is string": {"page": "x", "data": "oops"},
		"data is nested junk": {"data": map[string]interface{}{
			"hero":    "not a section",
			"welcome": []interface{}{1, 2},
			"contact": map[string]interface{}{"data": 42},
		}},
		"wrong typed fields": {"data": map[string]interface{}{
			"hero": map[string]interface{}{"data": map[string]interface{}{
				"title": 12, "subtitle": true, "hero-image": []interface{}{},
			}},
			"announcements": map[string]interface{}{"data": map[string]interface{}{"items": "not a list"}},
		}},
	}

	for name, payload := range payloads {
		for _, page := range Pages() {
			t.Run(name+"/"+page, func(t *testing.T) {
				area, ok := Lookup(page)
				require.True(t, ok)
				var view View
				require.NotPanics(t, func() { view = area.Extract(ParseDocument(payload)) })
				assertPopulated(t, reflect.ValueOf(view), page)
			})
		}
	}
}

func TestDefault(t *testing.T) {
	for _, page := range Pages() {
		view, ok := Default(page)
		require.True(t, ok, page)
		assertPopulated(t, reflect.ValueOf(view), page)
	}
	_, ok := Default("admin")
	assert.False(t, ok)
}

func TestFieldsPreferKebabOverCamel(t *testing.T) {
	f := Fields{"hero-image": "kebab.png", "heroImage": "camel.png"}
	assert.Equal(t, "kebab.png", f.String("hero-image", "d"))

	f = Fields{"heroImage": "camel.png"}
	assert.Equal(t, "camel.png", f.String("hero-image", "d"))

	f = Fields{"hero-image": 7, "heroImage": "camel.png"}
	assert.Equal(t, "camel.png", f.String("hero-image", "d"), "wrong-typed kebab falls through")

	f = Fields{"hero-image": "   "}
	assert.Equal(t, "d", f.String("hero-image", "d"))
}

func TestFieldsList(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []string
	}{
		{"strings", []interface{}{"a", "b"}, []string{"a", "b"}},
		{"text objects", []interface{}{map[string]interface{}{"text": "a"}, map[string]interface{}{"text": "b"}}, []string{"a", "b"}},
		{"mixed and blanks", []interface{}{"a", map[string]interface{}{"text": "  "}, map[string]interface{}{}, 5, "b"}, []string{"a", "b"}},
		{"empty array is authoritative", []interface{}{}, []string{}},
		{"not an array", "a,b", []string{"default"}},
		{"string slice", []string{"x", " "}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields{"items": tt.raw}.List("items", []string{"default"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldsListCamelFallback(t *testing.T) {
	f := Fields{"openHours": []interface{}{"9-5"}}
	assert.Equal(t, []string{"9-5"}, f.List("open-hours", nil))
}

func TestFieldsLinks(t *testing.T) {
	f := Fields{"items": []interface{}{
		map[string]interface{}{"label": "Prayer", "url": "/prayer"},
		map[string]interface{}{"text": "Old", "href": "/old"},
		map[string]interface{}{"label": "No url"},
		"/bare",
	}}
	assert.Equal(t, []Link{
		{Label: "Prayer", URL: "/prayer"},
		{Label: "Old", URL: "/old"},
		{Label: "/bare", URL: "/bare"},
	}, f.Links("items", nil))
}

func TestCaseConversion(t *testing.T) {
	assert.Equal(t, "heroImage", CamelCase("hero-image"))
	assert.Equal(t, "ctaText", CamelCase("cta_text"))
	assert.Equal(t, "hero-image", KebabCase("heroImage"))
	assert.Equal(t, "hero-image", KebabCase("hero_image"))
	assert.Equal(t, "title", KebabCase("title"))
}

func TestParseDocumentShape(t *testing.T) {
	nested := ParseDocument(map[string]interface{}{"page": "home", "data": map[string]interface{}{"hero": map[string]interface{}{}}})
	assert.Equal(t, ShapeNested, nested.Shape)
	assert.Equal(t, "home", nested.Page)

	flat := ParseDocument(map[string]interface{}{"page": "home", "hero": map[string]interface{}{}})
	assert.Equal(t, ShapeFlat, flat.Shape)

	bare := ParseDocument(map[string]interface{}{"page": "home"})
	assert.Equal(t, ShapeNested, bare.Shape)

	// The id may live only in the page_name column.
	single := ParseDocument(map[string]interface{}{"hero": map[string]interface{}{"data": map[string]interface{}{"title": "Stored"}}})
	assert.Equal(t, ShapeFlat, single.Shape)
	assert.Equal(t, "Stored", Fields(single.Section("hero").Data).String("title", ""))

	assert.Equal(t, ShapeNested, ParseDocument(map[string]interface{}{}).Shape)
}

func TestParseSection(t *testing.T) {
	assert.True(t, ParseSection(nil).IsEnabled())
	assert.True(t, ParseSection(map[string]interface{}{}).IsEnabled())
	assert.False(t, ParseSection(map[string]interface{}{"enabled": false}).IsEnabled())
	assert.False(t, ParseSection(map[string]interface{}{"enabled": "false"}).IsEnabled())
	assert.True(t, ParseSection(map[string]interface{}{"enabled": "maybe"}).IsEnabled())

	legacy := ParseSection(map[string]interface{}{"title": "Old"})
	assert.Equal(t, "Old", legacy.Data["title"])
}

func TestHomeReadsBothConventions(t *testing.T) {
	kebab := ExtractHome(ParseDocument(map[string]interface{}{
		"page": "home",
		"data": map[string]interface{}{
			"hero": map[string]interface{}{"enabled": false, "data": map[string]interface{}{
				"title": "Eid Mubarak", "hero-image": "eid.png", "cta-text": "Join us",
			}},
		},
	}))
	assert.False(t, kebab.Hero.Enabled)
	assert.Equal(t, "Eid Mubarak", kebab.Hero.Title)
	assert.Equal(t, "eid.png", kebab.Hero.Image.Ref)
	assert.Equal(t, "Join us", kebab.Hero.CTAText)
	assert.True(t, kebab.Hero.Image.Verify)

	camel := ExtractHome(ParseDocument(map[string]interface{}{
		"page": "home",
		"hero": map[string]interface{}{"data": map[string]interface{}{"heroImage": "camel.png", "ctaText": "Visit"}},
		"announcements": map[string]interface{}{"data": map[string]interface{}{
			"items": []interface{}{map[string]interface{}{"text": "Iftar tonight"}},
		}},
	}))
	assert.True(t, camel.Hero.Enabled)
	assert.Equal(t, "camel.png", camel.Hero.Image.Ref)
	assert.Equal(t, "Visit", camel.Hero.CTAText)
	assert.Equal(t, []string{"Iftar tonight"}, camel.Announcements.Items)
}

func TestWithSectionPreservesSiblings(t *testing.T) {
	sibling := map[string]interface{}{"data": map[string]interface{}{"title": "B"}}
	doc := ParseDocument(map[string]interface{}{
		"page": "about",
		"data": map[string]interface{}{"a": map[string]interface{}{}, "b": sibling},
	})
	off := false
	payload := doc.WithSection("a", models.SectionConfig{Enabled: &off, Data: map[string]interface{}{"title": "A"}})

	after := ParseDocument(payload)
	assert.Equal(t, ShapeNested, after.Shape)
	assert.Equal(t, sibling, payload["data"].(map[string]interface{})["b"])
	assert.False(t, after.Section("a").IsEnabled())
	assert.Equal(t, "A", after.Section("a").Data["title"])

	// the parsed input is not mutated
	assert.Equal(t, map[string]interface{}{}, doc.Section("a").ToMap())
}

func TestWithSectionFlat(t *testing.T) {
	doc := ParseDocument(map[string]interface{}{"page": "about", "mission": map[string]interface{}{}, "visibility": true})
	payload := doc.WithSection("values", models.SectionConfig{Data: map[string]interface{}{"items": []interface{}{"x"}}})
	_, nested := payload["data"]
	assert.False(t, nested)
	assert.Equal(t, true, payload["visibility"])
	assert.Contains(t, payload, "values")
}

func TestWithoutSectionField(t *testing.T) {
	doc := ParseDocument(map[string]interface{}{"page": "home", "data": map[string]interface{}{
		"hero": map[string]interface{}{"enabled": true, "data": map[string]interface{}{
			"hero-image": "gone.png", "heroImage": "gone.png", "title": "T",
		}},
	}})
	payload, changed := doc.WithoutSectionField("hero", "hero-image")
	require.True(t, changed)
	hero := ParseDocument(payload).Section("hero")
	assert.Equal(t, map[string]interface{}{"title": "T"}, hero.Data)
	assert.True(t, hero.IsEnabled())

	_, changed = ParseDocument(payload).WithoutSectionField("hero", "hero-image")
	assert.False(t, changed)
	_, changed = ParseDocument(nil).WithoutSectionField("hero", "hero-image")
	assert.False(t, changed)
}

func TestImageMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Image `json:"a"`
		B Image `json:"b"`
	}{A: Image{URL: "https://x/y.png"}, B: Image{Ref: "unresolved.png"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"https://x/y.png","b":null}`, string(b))
}
