// Package scenario holds the demo-site checks and the catalog that tells
// them where to run and which elements to use.
package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thesyncim/uicheck/pkg/session"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Title match modes.
const (
	MatchExact    = "exact"
	MatchContains = "contains"
)

// Spec is the configuration of one scenario.
type Spec struct {
	Site       string            `yaml:"site"`
	Path       string            `yaml:"path"`
	Tags       []string          `yaml:"tags"`
	Title      string            `yaml:"title"`
	TitleMatch string            `yaml:"title_match"`
	Selectors  map[string]string `yaml:"selectors"`
	Params     map[string]string `yaml:"params"`
}

// Catalog maps site names to base URLs and scenario names to specs.
type Catalog struct {
	Sites     map[string]string `yaml:"sites"`
	Scenarios map[string]*Spec  `yaml:"scenarios"`

	fs      afero.Fs
	workDir string
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a YAML catalog. Uploads resolve relative paths
// against the current working directory on the OS file system until WithFS
// says otherwise.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	c.fs = afero.NewOsFs()
	c.workDir = wd
	return &c, nil
}

// Validate checks that every scenario is registered, names a known site and
// has parseable selectors.
func (c *Catalog) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("catalog has no scenarios")
	}
	for name, spec := range c.Scenarios {
		if spec == nil {
			return fmt.Errorf("scenario %q: empty definition", name)
		}
		if _, ok := registry[name]; !ok {
			return fmt.Errorf("scenario %q: no such check", name)
		}
		if _, ok := c.Sites[spec.Site]; !ok {
			return fmt.Errorf("scenario %q: unknown site %q", name, spec.Site)
		}
		switch spec.TitleMatch {
		case "", MatchExact, MatchContains:
		default:
			return fmt.Errorf("scenario %q: title_match must be %q or %q", name, MatchExact, MatchContains)
		}
		for key, sel := range spec.Selectors {
			if _, err := session.ParseLocator(sel); err != nil {
				return fmt.Errorf("scenario %q: selector %q: %w", name, key, err)
			}
		}
	}
	return nil
}

// WithSites overrides base URLs by site name and returns c.
func (c *Catalog) WithSites(sites map[string]string) *Catalog {
	for name, url := range sites {
		c.Sites[name] = strings.TrimRight(url, "/")
	}
	return c
}

// WithFS sets the file system and directory used to resolve upload files.
func (c *Catalog) WithFS(fs afero.Fs, workDir string) *Catalog {
	c.fs = fs
	c.workDir = workDir
	return c
}

// Cases returns the scenarios carrying any of tags, sorted by name. With no
// tags every scenario is returned.
func (c *Catalog) Cases(tags ...string) []Case {
	names := make([]string, 0, len(c.Scenarios))
	for name, spec := range c.Scenarios {
		if len(tags) == 0 || hasAny(spec.Tags, tags) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	cases := make([]Case, 0, len(names))
	for _, name := range names {
		spec := c.Scenarios[name]
		cases = append(cases, Case{
			Name:    name,
			Spec:    *spec,
			BaseURL: strings.TrimRight(c.Sites[spec.Site], "/"),
			FS:      c.fs,
			WorkDir: c.workDir,
		})
	}
	return cases
}

// Case returns a single scenario by name.
func (c *Catalog) Case(name string) (Case, error) {
	for _, cs := range c.Cases() {
		if cs.Name == name {
			return cs, nil
		}
	}
	return Case{}, fmt.Errorf("no scenario named %q", name)
}

func hasAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
