package content

// Resources is the resources page view model.
type Resources struct {
	Intro TextBlock      `json:"intro"`
	Links ResourcesLinks `json:"links"`
}

type ResourcesLinks struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Items   []Link `json:"items"`
}

// ExtractResources builds the resources page view model.
func ExtractResources(d Document) *Resources {
	out := &Resources{
		Intro: textBlock(d, "intro", "Community Resources",
			"<p>Helpful links and services for new members, families and anyone in need of support.</p>"),
	}
	on, f := section(d, "links")
	out.Links = ResourcesLinks{
		Enabled: on,
		Title:   f.String("title", "Useful Links"),
		Items: f.Links("items", []Link{
			{Label: "Prayer Times", URL: "/prayer-times"},
			{Label: "Financial Assistance", URL: "/financial-assistance"},
			{Label: "Membership", URL: "/membership"},
		}),
	}
	return out
}

func (r *Resources) Images() []*Image { return nil }
