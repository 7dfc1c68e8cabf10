package review

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"travelbook/internal/domain"
)

type serviceKey struct {
	id  string
	typ domain.ServiceType
}

// SeedCatalog holds curated default reviews. They are never persisted; they
// are merged into listings at read time.
type SeedCatalog struct {
	byService map[serviceKey][]domain.Review
}

type seedFile struct {
	Reviews []domain.Review `yaml:"reviews"`
}

func NewSeedCatalog(reviews []domain.Review) (*SeedCatalog, error) {
	c := &SeedCatalog{byService: make(map[serviceKey][]domain.Review)}
	for i, rv := range reviews {
		if rv.ID == "" || rv.ServiceID == "" {
			return nil, fmt.Errorf("%w: entry %d needs id and serviceId", ErrSeed, i)
		}
		if !rv.ServiceType.Valid() {
			return nil, fmt.Errorf("%w: entry %d (%s) has service type %q", ErrSeed, i, rv.ID, rv.ServiceType)
		}
		k := serviceKey{rv.ServiceID, rv.ServiceType}
		c.byService[k] = append(c.byService[k], rv)
	}
	return c, nil
}

func ParseSeed(data []byte) (*SeedCatalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeed, err)
	}
	return NewSeedCatalog(f.Reviews)
}

// LoadSeed reads a YAML seed file. An empty path yields an empty catalog.
func LoadSeed(path string) (*SeedCatalog, error) {
	if path == "" {
		return NewSeedCatalog(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed reviews: %w", err)
	}
	return ParseSeed(data)
}

// For returns the seed reviews for one service. The slice must not be modified.
func (c *SeedCatalog) For(serviceID string, serviceType domain.ServiceType) []domain.Review {
	if c == nil {
		return nil
	}
	return c.byService[serviceKey{serviceID, serviceType}]
}

func (c *SeedCatalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, list := range c.byService {
		n += len(list)
	}
	return n
}
