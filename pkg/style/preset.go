// Package style loads named appearance presets from YAML and applies them
// to widgets through their chained setters. A preset only carries the keys
// the sheet declares, so applying one composes with the host's own setters
// under the usual last-write-wins rule.
package style

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-cupertino/cupertino/pkg/graphics"
	"github.com/go-cupertino/cupertino/pkg/platform"
	"github.com/go-cupertino/cupertino/pkg/widgets"
)

// Sheet holds the named presets of one YAML document.
type Sheet struct {
	SafariViews map[string]SafariPreset    `yaml:"safariViews"`
	SearchBars  map[string]SearchBarPreset `yaml:"searchBars"`
}

// Parse reads a sheet from YAML bytes.
func Parse(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}
	return &sheet, nil
}

// Load reads a sheet from a reader.
func Load(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a sheet from a file.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}
	return Parse(data)
}

// SafariView returns a named browser preset.
func (s *Sheet) SafariView(name string) (SafariPreset, error) {
	preset, ok := s.SafariViews[name]
	if !ok {
		return SafariPreset{}, fmt.Errorf("style: no safari view preset %q", name)
	}
	return preset, nil
}

// SearchBar returns a named search bar preset.
func (s *Sheet) SearchBar(name string) (SearchBarPreset, error) {
	preset, ok := s.SearchBars[name]
	if !ok {
		return SearchBarPreset{}, fmt.Errorf("style: no search bar preset %q", name)
	}
	return preset, nil
}

// colorValue parses "#RRGGBB" / "#AARRGGBB" YAML scalars.
type colorValue struct {
	color graphics.Color
}

func (c *colorValue) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	color, err := graphics.ParseColor(raw)
	if err != nil {
		return err
	}
	c.color = color
	return nil
}

// dismissStyleValue parses done/close/cancel scalars.
type dismissStyleValue struct {
	style platform.DismissButtonStyle
}

func (d *dismissStyleValue) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "done":
		d.style = platform.DismissButtonStyleDone
	case "close":
		d.style = platform.DismissButtonStyleClose
	case "cancel":
		d.style = platform.DismissButtonStyleCancel
	default:
		return fmt.Errorf("style: unknown dismiss button style %q", raw)
	}
	return nil
}

// barStyleValue parses default/black scalars.
type barStyleValue struct {
	style platform.BarStyle
}

func (b *barStyleValue) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "default":
		b.style = platform.BarStyleDefault
	case "black":
		b.style = platform.BarStyleBlack
	default:
		return fmt.Errorf("style: unknown bar style %q", raw)
	}
	return nil
}

// searchStyleValue parses default/prominent/minimal scalars.
type searchStyleValue struct {
	style platform.SearchBarStyle
}

func (s *searchStyleValue) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "default":
		s.style = platform.SearchBarStyleDefault
	case "prominent":
		s.style = platform.SearchBarStyleProminent
	case "minimal":
		s.style = platform.SearchBarStyleMinimal
	default:
		return fmt.Errorf("style: unknown search bar style %q", raw)
	}
	return nil
}

// SafariPreset is a partial SafariView configuration. Nil fields are left
// untouched by Apply.
type SafariPreset struct {
	EntersReaderIfAvailable   *bool              `yaml:"entersReaderIfAvailable"`
	BarCollapsingEnabled      *bool              `yaml:"barCollapsingEnabled"`
	PreferredBarTintColor     *colorValue        `yaml:"preferredBarTintColor"`
	PreferredControlTintColor *colorValue        `yaml:"preferredControlTintColor"`
	DismissButtonStyle        *dismissStyleValue `yaml:"dismissButtonStyle"`
}

// Apply configures a SafariView from the preset's declared keys. Later
// setter calls on the result still override preset values.
func (p SafariPreset) Apply(w widgets.SafariView) widgets.SafariView {
	if p.EntersReaderIfAvailable != nil {
		w = w.EntersReaderIfAvailable(*p.EntersReaderIfAvailable)
	}
	if p.BarCollapsingEnabled != nil {
		w = w.BarCollapsingEnabled(*p.BarCollapsingEnabled)
	}
	if p.PreferredBarTintColor != nil {
		w = w.PreferredBarTintColor(p.PreferredBarTintColor.color)
	}
	if p.PreferredControlTintColor != nil {
		w = w.PreferredControlTintColor(p.PreferredControlTintColor.color)
	}
	if p.DismissButtonStyle != nil {
		w = w.DismissButtonStyle(p.DismissButtonStyle.style)
	}
	return w
}

// SearchBarPreset is a partial SearchBar configuration. Nil fields are left
// untouched by Apply.
type SearchBarPreset struct {
	BarStyle          *barStyleValue    `yaml:"barStyle"`
	Prompt            *string           `yaml:"prompt"`
	ShowsCancelButton *bool             `yaml:"showsCancelButton"`
	BarTintColor      *colorValue       `yaml:"barTintColor"`
	Style             *searchStyleValue `yaml:"searchBarStyle"`
	Translucent       *bool             `yaml:"translucent"`
	ScopeButtonTitles []string          `yaml:"scopeButtonTitles"`
	ShowsScopeBar     *bool             `yaml:"showsScopeBar"`
}

// Apply configures a SearchBar from the preset's declared keys. Later
// setter calls on the result still override preset values.
func (p SearchBarPreset) Apply(w widgets.SearchBar) widgets.SearchBar {
	if p.BarStyle != nil {
		w = w.BarStyle(p.BarStyle.style)
	}
	if p.Prompt != nil {
		w = w.Prompt(*p.Prompt)
	}
	if p.ShowsCancelButton != nil {
		w = w.ShowsCancelButton(*p.ShowsCancelButton)
	}
	if p.BarTintColor != nil {
		w = w.BarTintColor(p.BarTintColor.color)
	}
	if p.Style != nil {
		w = w.Style(p.Style.style)
	}
	if p.Translucent != nil {
		w = w.Translucent(*p.Translucent)
	}
	if p.ScopeButtonTitles != nil {
		w = w.ScopeButtonTitles(p.ScopeButtonTitles...)
	}
	if p.ShowsScopeBar != nil {
		w = w.ShowsScopeBar(*p.ShowsScopeBar)
	}
	return w
}
