// AngelaMos | 2026
// service.go

package apartment

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Apartment, error) {
	return s.repo.List(ctx)
}

// SeedFile is the document shape accepted by Seed.
type SeedFile struct {
	Apartments []Apartment `yaml:"apartments"`
}

// ParseSeed decodes a YAML seed document and checks each entry.
func ParseSeed(r io.Reader) ([]Apartment, error) {
	var file SeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	for i, a := range file.Apartments {
		if a.BlockName == "" {
			return nil, fmt.Errorf("apartment %d: blockName is required", i)
		}
		if a.FloorNo < 0 || a.ApartmentNo < 0 {
			return nil, fmt.Errorf("apartment %d: negative floor or number", i)
		}
		if a.Rent <= 0 {
			return nil, fmt.Errorf("apartment %d: rent must be positive", i)
		}
	}

	return file.Apartments, nil
}

// Seed inserts every apartment in the YAML document read from r.
func (s *Service) Seed(ctx context.Context, r io.Reader) (int, error) {
	items, err := ParseSeed(r)
	if err != nil {
		return 0, err
	}
	return s.repo.InsertMany(ctx, items)
}
