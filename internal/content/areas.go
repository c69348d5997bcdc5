package content

import "sort"

// Page identifiers with a content area.
const (
	PageHome                = "home"
	PageAbout               = "about"
	PageDonate              = "donate"
	PageRamadan             = "ramadan"
	PageResources           = "resources"
	PageMembership          = "membership"
	PageContact             = "contact"
	PageFinancialAssistance = "financial-assistance"
	PageServices            = "services"
	PageEvents              = "events"
)

// View is a fully defaulted view model.
type View interface {
	// Images returns the image slots so they can be resolved in place.
	Images() []*Image
}

// Area describes one content area.
type Area struct {
	Page string
	// Folder is the storage folder for the area's uploads.
	Folder  string
	Extract func(Document) View
}

var areas = map[string]Area{
	PageHome:                {PageHome, "Home", func(d Document) View { return ExtractHome(d) }},
	PageAbout:               {PageAbout, "about", func(d Document) View { return ExtractAbout(d) }},
	PageDonate:              {PageDonate, "donate", func(d Document) View { return ExtractDonate(d) }},
	PageRamadan:             {PageRamadan, "ramadan", func(d Document) View { return ExtractRamadan(d) }},
	PageResources:           {PageResources, "resources", func(d Document) View { return ExtractResources(d) }},
	PageMembership:          {PageMembership, "membership", func(d Document) View { return ExtractMembership(d) }},
	PageContact:             {PageContact, "contact", func(d Document) View { return ExtractContact(d) }},
	PageFinancialAssistance: {PageFinancialAssistance, "financial-assistance", func(d Document) View { return ExtractFinancialAssistance(d) }},
	PageServices:            {PageServices, "services", func(d Document) View { return ExtractServices(d) }},
	PageEvents:              {PageEvents, "events", func(d Document) View { return ExtractEvents(d) }},
}

// Lookup returns the content area for page.
func Lookup(page string) (Area, bool) {
	a, ok := areas[page]
	return a, ok
}

// Default returns the fully defaulted view model of page.
func Default(page string) (View, bool) {
	a, ok := areas[page]
	if !ok {
		return nil, false
	}
	return a.Extract(ParseDocument(nil)), true
}

// Pages returns every known page identifier, sorted.
func Pages() []string {
	out := make([]string, 0, len(areas))
	for p := range areas {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// section reads a section's flag and data bag.
func section(d Document, key string) (bool, Fields) {
	cfg := d.Section(key)
	return cfg.IsEnabled(), Fields(cfg.Data)
}

func images(slots ...*Image) []*Image { return slots }
