package sources

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
)

//go:embed defaults.yml
var defaultSources []byte

// sourcesFile represents the structure of a sources YAML file.
type sourcesFile struct {
	Sources []map[string]any `yaml:"sources"`
}

// Loader reads source descriptors from a YAML file, or from the built-in
// table when no path is set.
type Loader struct {
	path string
}

// NewLoader creates a Loader. An empty path selects the built-in table.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, decodes and validates the sources.
func (l *Loader) Load() (*Registry, error) {
	data := defaultSources
	if l.path != "" {
		fileData, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sources file: %w", err)
		}
		data = fileData
	}

	registry, err := Parse(data)
	if err != nil {
		if l.path != "" {
			return nil, fmt.Errorf("%s: %w", l.path, err)
		}
		return nil, err
	}
	return registry, nil
}

// Default returns the built-in registry.
func Default() (*Registry, error) {
	return NewLoader("").Load()
}

// Parse decodes a sources YAML document into a Registry.
func Parse(data []byte) (*Registry, error) {
	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, ErrNoSources
	}

	descriptors := make([]Descriptor, 0, len(file.Sources))
	for i, raw := range file.Sources {
		d, err := decodeDescriptor(raw)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		if err := validateDescriptor(&d); err != nil {
			return nil, fmt.Errorf("source %q: %w", d.Key, err)
		}
		descriptors = append(descriptors, d)
	}

	return NewRegistry(descriptors)
}

// decodeDescriptor converts a raw source map to a Descriptor.
func decodeDescriptor(raw map[string]any) (Descriptor, error) {
	var d Descriptor
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &d,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if decodeErr := decoder.Decode(raw); decodeErr != nil {
		return Descriptor{}, fmt.Errorf("failed to decode source: %w", decodeErr)
	}

	d.Selectors = trimSelectors(d.Selectors)
	return d, nil
}

// validateDescriptor checks required fields, the scrape URL and category
// names. A missing api_id defaults to the key.
func validateDescriptor(d *Descriptor) error {
	if d.Key == "" {
		return fmt.Errorf("%w: key", ErrMissingRequiredField)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if d.ScrapeURL == "" {
		return fmt.Errorf("%w: scrape_url", ErrMissingRequiredField)
	}
	if err := validateURL(d.ScrapeURL); err != nil {
		return err
	}
	if len(d.Selectors.Articles) == 0 {
		return fmt.Errorf("%w: selectors.articles", ErrMissingRequiredField)
	}
	if len(d.Selectors.Title) == 0 {
		return fmt.Errorf("%w: selectors.title", ErrMissingRequiredField)
	}
	for category := range d.Categories {
		if !news.IsCategory(category) {
			return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
		}
	}
	if d.APIID == "" {
		d.APIID = d.Key
	}
	return nil
}

// validateURL validates that a URL is absolute http or https.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

func trimSelectors(s Selectors) Selectors {
	return Selectors{
		Articles:    trimAll(s.Articles),
		Title:       trimAll(s.Title),
		Link:        trimAll(s.Link),
		Description: trimAll(s.Description),
		Image:       trimAll(s.Image),
		Date:        trimAll(s.Date),
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
