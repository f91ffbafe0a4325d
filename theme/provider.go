package theme

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// ErrUnknownTheme is returned by Load when the key is not in the set.
var ErrUnknownTheme = errors.New("unknown theme")

// Provider owns the loaded themes and the current selection.
type Provider struct {
	themes     map[string]*Theme
	order      []string
	defaultKey string
	current    *Theme
}

type providerDoc struct {
	Default string     `yaml:"default"`
	Themes  []themeDoc `yaml:"themes"`
}

// NewProvider loads the embedded theme set.
func NewProvider() (*Provider, error) {
	return Parse(themesYAML)
}

// FallbackProvider returns a provider whose only theme is Fallback.
func FallbackProvider() *Provider {
	fb := Fallback()
	return &Provider{
		themes:     map[string]*Theme{fb.Key: fb},
		order:      []string{fb.Key},
		defaultKey: fb.Key,
		current:    fb,
	}
}

// Parse decodes a theme set document.
func Parse(data []byte) (*Provider, error) {
	var doc providerDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse themes: %w", err)
	}
	if len(doc.Themes) == 0 {
		return nil, errors.New("theme set is empty")
	}

	p := &Provider{themes: make(map[string]*Theme, len(doc.Themes))}
	var errs []error
	for i := range doc.Themes {
		t, err := doc.Themes[i].resolve()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := p.themes[t.Key]; dup {
			errs = append(errs, fmt.Errorf("theme %q is duplicated", t.Key))
			continue
		}
		p.themes[t.Key] = t
		p.order = append(p.order, t.Key)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid themes: %w", err)
	}

	p.defaultKey = doc.Default
	if p.defaultKey == "" {
		p.defaultKey = p.order[0]
	}
	def, ok := p.themes[p.defaultKey]
	if !ok {
		return nil, fmt.Errorf("default theme %q: %w", p.defaultKey, ErrUnknownTheme)
	}
	p.current = def
	return p, nil
}

// Load makes key the current theme. An unknown key selects the default theme
// and returns an error wrapping ErrUnknownTheme; the returned theme is never
// nil.
func (p *Provider) Load(key string) (*Theme, error) {
	if t, ok := p.themes[key]; ok {
		p.current = t
		return t, nil
	}
	p.current = p.Default()
	return p.current, fmt.Errorf("%w: %q, using %s", ErrUnknownTheme, key, p.current.Key)
}

// Current returns the selected theme.
func (p *Provider) Current() *Theme {
	if p.current == nil {
		return Fallback()
	}
	return p.current
}

// Default returns the default theme.
func (p *Provider) Default() *Theme {
	if t, ok := p.themes[p.defaultKey]; ok {
		return t
	}
	return Fallback()
}

// Get looks up a theme without changing the selection.
func (p *Provider) Get(key string) (*Theme, bool) {
	t, ok := p.themes[key]
	return t, ok
}

// Keys returns theme keys in document order.
func (p *Provider) Keys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// All returns the themes in document order.
func (p *Provider) All() []*Theme {
	out := make([]*Theme, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, p.themes[k])
	}
	return out
}

// IndexOf returns the position of key in document order, or -1.
func (p *Provider) IndexOf(key string) int {
	for i, k := range p.order {
		if k == key {
			return i
		}
	}
	return -1
}
