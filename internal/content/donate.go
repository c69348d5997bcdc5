package content

// Donate is the donation page view model.
type Donate struct {
	Hero    Banner       `json:"hero"`
	Methods ListBlock    `json:"methods"`
	Zakat   TextBlock    `json:"zakat"`
	Bank    DonateBank   `json:"bank"`
	Online  DonateOnline `json:"online"`
}

type DonateBank struct {
	Enabled       bool   `json:"enabled"`
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
}

type DonateOnline struct {
	Enabled    bool   `json:"enabled"`
	ButtonText string `json:"buttonText"`
	Link       string `json:"link"`
}

// ExtractDonate builds the donation page view model.
func ExtractDonate(d Document) *Donate {
	out := &Donate{
		Hero: banner(d, "hero", "Support Your Community", "Every gift keeps our doors open and our programs running."),
		Methods: listBlock(d, "methods", "Ways to Give", []string{
			"Give online with a card or bank transfer",
			"Drop a check or cash in the donation box at the main office",
			"Set up a recurring monthly gift",
			"Ask your employer about matching gifts",
		}),
		Zakat: textBlock(d, "zakat", "Zakat and Sadaqah",
			"<p>Zakat collected by the center is distributed to eligible families in our area. "+
				"Please note the purpose of your gift so it can be allocated correctly.</p>"),
	}

	on, f := section(d, "bank")
	out.Bank = DonateBank{
		Enabled:       on,
		AccountName:   f.String("account-name", "Community Center Inc."),
		BankName:      f.String("bank-name", "Please contact the office for bank details"),
		AccountNumber: f.String("account-number", "Available on request"),
		RoutingNumber: f.String("routing-number", "Available on request"),
	}

	on, f = section(d, "online")
	out.Online = DonateOnline{
		Enabled:    on,
		ButtonText: f.String("button-text", "Donate Now"),
		Link:       f.String("link", "/donate#give"),
	}
	return out
}

func (d *Donate) Images() []*Image { return images(&d.Hero.Image) }
