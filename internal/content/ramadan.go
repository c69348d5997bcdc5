package content

// Ramadan is the Ramadan program page view model.
type Ramadan struct {
	Hero     Banner       `json:"hero"`
	Schedule ListBlock    `json:"schedule"`
	Iftar    RamadanIftar `json:"iftar"`
	Eid      TextBlock    `json:"eid"`
}

type RamadanIftar struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Image   Image  `json:"image"`
	SignUp  string `json:"signUpLink"`
}

// ExtractRamadan builds the Ramadan page view model.
func ExtractRamadan(d Document) *Ramadan {
	out := &Ramadan{
		Hero: banner(d, "hero", "Ramadan Mubarak", "Join us for nightly prayers, community iftars and reflection."),
		Schedule: listBlock(d, "schedule", "Nightly Schedule", []string{
			"Maghrib and community iftar at sunset",
			"Isha prayer followed by Taraweeh",
			"Qiyam al-Layl during the last ten nights",
		}),
		Eid: textBlock(d, "eid", "Eid al-Fitr",
			"<p>Eid prayer time and location will be announced once the moon sighting is confirmed. "+
				"Please remember to pay Zakat al-Fitr before the Eid prayer.</p>"),
	}

	on, f := section(d, "iftar")
	out.Iftar = RamadanIftar{
		Enabled: on,
		Title:   f.String("title", "Community Iftar"),
		Body: f.HTML("body", "<p>Iftar is served every evening in the main hall. "+
			"Families are welcome to sponsor an iftar for the community.</p>"),
		Image:  newImage(f, "iftar", "image", false),
		SignUp: f.String("sign-up-link", "/contact"),
	}
	return out
}

func (r *Ramadan) Images() []*Image { return images(&r.Hero.Image, &r.Iftar.Image) }
