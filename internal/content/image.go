package content

import "encoding/json"

// Image is an image slot in a view model. Ref is the raw stored reference;
// URL is filled in by the resolver. Section and Field locate the reference
// in the document for self-healing removal.
type Image struct {
	Ref     string
	URL     string
	Section string
	Field   string
	// Verify asks for an existence check before the URL is trusted.
	Verify bool
}

func newImage(f Fields, section, field string, verify bool) Image {
	return Image{Ref: f.String(field, ""), Section: section, Field: field, Verify: verify}
}

// Clear removes the image from the view model.
func (i *Image) Clear() {
	i.Ref = ""
	i.URL = ""
}

// MarshalJSON renders the resolved URL, or null when there is nothing to show.
func (i Image) MarshalJSON() ([]byte, error) {
	if i.URL == "" {
		return []byte("null"), nil
	}
	return json.Marshal(i.URL)
}
