package content

// Contact is the contact drawer view model.
type Contact struct {
	Enabled bool     `json:"enabled"`
	Title   string   `json:"title"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Hours   []string `json:"hours"`
	MapLink string   `json:"mapLink"`
}

// ExtractContact builds the contact drawer view model.
func ExtractContact(d Document) *Contact {
	on, f := section(d, "contact")
	return &Contact{
		Enabled: on,
		Title:   f.String("title", "Contact Us"),
		Address: f.String("address", "Please visit the main office during opening hours."),
		Phone:   f.String("phone", "Call the main office"),
		Email:   f.String("email", "info@example.org"),
		Hours: f.List("hours", []string{
			"Office: Monday to Friday, 10 AM to 6 PM",
			"Prayer hall: open for all five daily prayers",
		}),
		MapLink: f.String("map-link", "/contact#map"),
	}
}

func (c *Contact) Images() []*Image { return nil }
