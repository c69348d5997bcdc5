package content

// Home is the home page view model.
type Home struct {
	Hero          HomeHero          `json:"hero"`
	Welcome       HomeWelcome       `json:"welcome"`
	Announcements HomeAnnouncements `json:"announcements"`
}

type HomeHero struct {
	Enabled  bool   `json:"enabled"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    Image  `json:"image"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
}

type HomeWelcome struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

type HomeAnnouncements struct {
	Enabled bool     `json:"enabled"`
	Title   string   `json:"title"`
	Items   []string `json:"items"`
}

// ExtractHome builds the home view model. The hero image is verified
// against storage before rendering.
func ExtractHome(d Document) *Home {
	var h Home

	on, f := section(d, "hero")
	h.Hero = HomeHero{
		Enabled:  on,
		Title:    f.String("title", "Welcome to Our Community Center"),
		Subtitle: f.String("subtitle", "A place of worship, learning and service for every family in our neighborhood."),
		Image:    newImage(f, "hero", "hero-image", true),
		CTAText:  f.String("cta-text", "Plan Your Visit"),
		CTALink:  f.String("cta-link", "/about"),
	}

	on, f = section(d, "welcome")
	h.Welcome = HomeWelcome{
		Enabled: on,
		Title:   f.String("title", "Assalamu Alaikum and Welcome"),
		Body: f.HTML("body", "<p>Our doors are open five times a day for prayer and all week for classes, "+
			"youth programs and community gatherings. Whether you are a longtime member or visiting for the "+
			"first time, we are glad you are here.</p>"),
	}

	on, f = section(d, "announcements")
	h.Announcements = HomeAnnouncements{
		Enabled: on,
		Title:   f.String("title", "Announcements"),
		Items: f.List("items", []string{
			"Jumu'ah prayer is held every Friday at 1:30 PM.",
			"Weekend Quran school registration is now open.",
			"Volunteers are needed for the monthly food drive.",
		}),
	}
	return &h
}

func (h *Home) Images() []*Image { return images(&h.Hero.Image) }
