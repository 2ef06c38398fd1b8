package engine

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Normalization policies a feature can declare in the catalog.
const (
	PolicyCohortHigh    = "cohort_high"
	PolicyCohortLow     = "cohort_low"
	PolicyToleranceBand = "tolerance_band"
	PolicyScale13       = "scale_1_3"
	PolicyPassthrough   = "passthrough"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// TestDef identifies one of the physical/technical tests.
type TestDef struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Feature maps one raw derived metric onto a normalized feature.
type Feature struct {
	ID     string  `yaml:"id"`
	Test   string  `yaml:"test"`
	Policy string  `yaml:"policy"`
	Limit  float64 `yaml:"limit,omitempty"`
}

// Composite is one of the four player style scores, defined as a weight
// table over a subset of the tests.
type Composite struct {
	ID      string         `yaml:"id"`
	Label   string         `yaml:"label"`
	Weights map[string]int `yaml:"weights"`
}

// Catalog is the declarative description of tests, normalized features and
// composite weight tables that drives normalization and aggregation.
type Catalog struct {
	Tests      []TestDef   `yaml:"tests"`
	Features   []Feature   `yaml:"features"`
	Composites []Composite `yaml:"composites"`

	featuresByTest map[string][]Feature
}

// LoadCatalog parses and validates a catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}

	cat.featuresByTest = make(map[string][]Feature)
	for _, f := range cat.Features {
		cat.featuresByTest[f.Test] = append(cat.featuresByTest[f.Test], f)
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	testIDs := make(map[string]bool, len(c.Tests))
	for _, t := range c.Tests {
		if t.ID == "" {
			return fmt.Errorf("catalog: test with empty id")
		}
		if testIDs[t.ID] {
			return fmt.Errorf("catalog: duplicate test %q", t.ID)
		}
		testIDs[t.ID] = true
	}

	featureIDs := make(map[string]bool, len(c.Features))
	for _, f := range c.Features {
		if featureIDs[f.ID] {
			return fmt.Errorf("catalog: duplicate feature %q", f.ID)
		}
		featureIDs[f.ID] = true
		if !testIDs[f.Test] {
			return fmt.Errorf("catalog: feature %q references unknown test %q", f.ID, f.Test)
		}
		switch f.Policy {
		case PolicyCohortHigh, PolicyCohortLow, PolicyScale13, PolicyPassthrough:
		case PolicyToleranceBand:
			if f.Limit <= 0 {
				return fmt.Errorf("catalog: feature %q needs a positive tolerance limit", f.ID)
			}
		default:
			return fmt.Errorf("catalog: feature %q has unknown policy %q", f.ID, f.Policy)
		}
	}

	if len(c.Composites) != 4 {
		return fmt.Errorf("catalog: expected 4 composites, got %d", len(c.Composites))
	}
	for _, comp := range c.Composites {
		if len(comp.Weights) == 0 {
			return fmt.Errorf("catalog: composite %q has no weights", comp.ID)
		}
		for test, w := range comp.Weights {
			if !testIDs[test] {
				return fmt.Errorf("catalog: composite %q weights unknown test %q", comp.ID, test)
			}
			if w < 1 || w > 3 {
				return fmt.Errorf("catalog: composite %q weight for %q out of range: %d", comp.ID, test, w)
			}
		}
	}
	return nil
}

// FeaturesForTest returns the normalized features belonging to one test.
func (c *Catalog) FeaturesForTest(testID string) []Feature {
	return c.featuresByTest[testID]
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded catalog. The embedded document is
// validated once; an invalid build ships no usable engine, so callers treat
// the error as fatal at startup.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = LoadCatalog(defaultCatalogYAML)
	})
	return defaultCatalog, defaultCatalogErr
}
