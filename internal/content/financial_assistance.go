package content

// FinancialAssistance is the financial assistance drawer view model.
type FinancialAssistance struct {
	Enabled      bool     `json:"enabled"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Eligibility  []string `json:"eligibility"`
	ApplyText    string   `json:"applyText"`
	ApplyLink    string   `json:"applyLink"`
	ContactEmail string   `json:"contactEmail"`
}

// ExtractFinancialAssistance builds the financial assistance view model.
func ExtractFinancialAssistance(d Document) *FinancialAssistance {
	on, f := section(d, "financial-assistance")
	return &FinancialAssistance{
		Enabled: on,
		Title:   f.String("title", "Financial Assistance"),
		Description: f.HTML("description", "<p>Families facing hardship can apply for help with rent, "+
			"utilities, groceries and school costs. All requests are handled confidentially.</p>"),
		Eligibility: f.List("eligibility", []string{
			"Residents of the local area",
			"Proof of need such as a recent bill or notice",
			"A short conversation with our assistance coordinator",
		}),
		ApplyText:    f.String("apply-text", "Request Assistance"),
		ApplyLink:    f.String("apply-link", "/financial-assistance#apply"),
		ContactEmail: f.String("contact-email", "assistance@example.org"),
	}
}

func (a *FinancialAssistance) Images() []*Image { return nil }
