package content

// Services is the services page view model.
type Services struct {
	Hero      Banner    `json:"hero"`
	Offerings ListBlock `json:"offerings"`
	Nikah     TextBlock `json:"nikah"`
	Funeral   TextBlock `json:"funeral"`
}

// ExtractServices builds the services page view model.
func ExtractServices(d Document) *Services {
	return &Services{
		Hero: banner(d, "hero", "Our Services", "Religious, educational and social services for the whole community."),
		Offerings: listBlock(d, "offerings", "What We Offer", []string{
			"Daily and Friday prayers",
			"Weekend Quran and Arabic school",
			"Youth and sisters' programs",
			"Counseling and family support",
			"New Muslim support classes",
		}),
		Nikah: textBlock(d, "nikah", "Nikah Services",
			"<p>Our imam performs marriage ceremonies at the center. Please book at least four weeks in advance.</p>"),
		Funeral: textBlock(d, "funeral", "Funeral Services",
			"<p>Janazah services are available at any time. Please call the office and we will guide your family through each step.</p>"),
	}
}

func (s *Services) Images() []*Image { return images(&s.Hero.Image) }
