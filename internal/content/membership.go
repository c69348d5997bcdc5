package content

// Membership is the membership drawer view model.
type Membership struct {
	Enabled     bool     `json:"enabled"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Fee         string   `json:"fee"`
	CTAText     string   `json:"ctaText"`
	FormLink    string   `json:"formLink"`
}

// ExtractMembership builds the membership drawer view model.
func ExtractMembership(d Document) *Membership {
	on, f := section(d, "membership")
	return &Membership{
		Enabled: on,
		Title:   f.String("title", "Become a Member"),
		Description: f.HTML("description", "<p>Members sustain the center and have a voice in its future. "+
			"Membership is open to every adult in our community.</p>"),
		Benefits: f.List("benefits", []string{
			"Voting rights at the annual general meeting",
			"Discounted tuition for weekend school and summer camp",
			"Priority booking of the hall for family events",
		}),
		Fee:      f.String("fee", "$120 per year, or $10 per month"),
		CTAText:  f.String("cta-text", "Apply for Membership"),
		FormLink: f.String("form-link", "/membership#apply"),
	}
}

func (m *Membership) Images() []*Image { return nil }
