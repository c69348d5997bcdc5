package content

// About is the about page view model.
type About struct {
	Hero    Banner    `json:"hero"`
	Mission TextBlock `json:"mission"`
	History TextBlock `json:"history"`
	Values  ListBlock `json:"values"`
}

// Banner is a titled header with an optional image, shared by several pages.
type Banner struct {
	Enabled  bool   `json:"enabled"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    Image  `json:"image"`
}

// TextBlock is a titled rich-text block.
type TextBlock struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// ListBlock is a titled list of short lines.
type ListBlock struct {
	Enabled bool     `json:"enabled"`
	Title   string   `json:"title"`
	Items   []string `json:"items"`
}

func banner(d Document, key, title, subtitle string) Banner {
	on, f := section(d, key)
	return Banner{
		Enabled:  on,
		Title:    f.String("title", title),
		Subtitle: f.String("subtitle", subtitle),
		Image:    newImage(f, key, "hero-image", false),
	}
}

func textBlock(d Document, key, title, body string) TextBlock {
	on, f := section(d, key)
	return TextBlock{Enabled: on, Title: f.String("title", title), Body: f.HTML("body", body)}
}

func listBlock(d Document, key, title string, items []string) ListBlock {
	on, f := section(d, key)
	return ListBlock{Enabled: on, Title: f.String("title", title), Items: f.List("items", items)}
}

// ExtractAbout builds the about page view model.
func ExtractAbout(d Document) *About {
	return &About{
		Hero: banner(d, "hero", "About Us", "Serving our community since 1987."),
		Mission: textBlock(d, "mission", "Our Mission",
			"<p>To provide a welcoming place of worship, to nurture faith and learning across generations, "+
				"and to serve our neighbors regardless of background.</p>"),
		History: textBlock(d, "history", "Our History",
			"<p>What began as a small prayer room in a rented storefront has grown into a full community "+
				"center with a prayer hall, classrooms, a library and a gymnasium, built entirely through the "+
				"generosity of local families.</p>"),
		Values: listBlock(d, "values", "Our Values", []string{
			"Faith and sincerity",
			"Knowledge and learning",
			"Compassion and service",
			"Openness to all",
		}),
	}
}

func (a *About) Images() []*Image { return images(&a.Hero.Image) }
