package content

// Events is the events page view model.
type Events struct {
	Hero     Banner    `json:"hero"`
	Upcoming ListBlock `json:"upcoming"`
	Calendar Calendar  `json:"calendar"`
}

type Calendar struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Link    string `json:"link"`
}

// ExtractEvents builds the events page view model.
func ExtractEvents(d Document) *Events {
	out := &Events{
		Hero: banner(d, "hero", "Events", "Gatherings, lectures and celebrations for all ages."),
		Upcoming: listBlock(d, "upcoming", "Upcoming Events", []string{
			"Monthly community potluck, first Saturday of each month",
			"Friday night youth halaqa",
			"Open house for neighbors and interfaith guests",
		}),
	}
	on, f := section(d, "calendar")
	out.Calendar = Calendar{
		Enabled: on,
		Text:    f.String("text", "View the full calendar"),
		Link:    f.String("link", "/events#calendar"),
	}
	return out
}

func (e *Events) Images() []*Image { return images(&e.Hero.Image) }
