package services

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// MenuItem is one navigation link.
type MenuItem struct {
	Label string `yaml:"label" json:"label"`
	Path  string `yaml:"path" json:"path"`
	Page  string `yaml:"page,omitempty" json:"page,omitempty"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Menu is the navigation menu plus quick-link icons.
type Menu struct {
	Items      []MenuItem `yaml:"items" json:"items"`
	QuickLinks []MenuItem `yaml:"quick_links" json:"quickLinks"`
}

// ParseMenu decodes a YAML menu definition.
func ParseMenu(data []byte) (Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Menu{}, fmt.Errorf("failed to parse menu: %w", err)
	}
	return m, nil
}

// NavigationService filters the site menu through page visibility.
type NavigationService struct {
	menu       Menu
	visibility *VisibilityService
}

// NewNavigationService creates a NavigationService over the embedded menu
func NewNavigationService(visibility *VisibilityService) (*NavigationService, error) {
	m, err := ParseMenu(defaultMenu)
	if err != nil {
		return nil, err
	}
	return &NavigationService{menu: m, visibility: visibility}, nil
}

// Menu returns the links whose pages are visible. Visibility is fetched
// once per call and shared by every item.
func (s *NavigationService) Menu(ctx context.Context) Menu {
	gate := s.visibility.NewGate()
	return Menu{
		Items:      filterItems(ctx, gate, s.menu.Items),
		QuickLinks: filterItems(ctx, gate, s.menu.QuickLinks),
	}
}

func filterItems(ctx context.Context, gate *Gate, items []MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if it.Page == "" || gate.IsVisible(ctx, it.Page) {
			out = append(out, it)
		}
	}
	return out
}
