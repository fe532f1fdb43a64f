// Package seeds holds the initial catalogue written by the seed command.
package seeds

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	seedusecases "github.com/brt06a/Testv5/internal/application/seed/usecases"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Email    string `yaml:"email"`
	} `yaml:"admin"`
	Plans []struct {
		Name     string   `yaml:"name"`
		Duration string   `yaml:"duration"`
		Price    string   `yaml:"price"`
		Features []string `yaml:"features"`
		Popular  bool     `yaml:"popular"`
	} `yaml:"plans"`
}

// DefaultCatalog returns the embedded catalogue.
func DefaultCatalog() (seedusecases.Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes a YAML catalogue. Plans keep the order of the document.
func ParseCatalog(data []byte) (seedusecases.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return seedusecases.Catalog{}, fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	if file.Admin.Username == "" || file.Admin.Password == "" {
		return seedusecases.Catalog{}, fmt.Errorf("seed catalog needs admin username and password")
	}

	catalog := seedusecases.Catalog{
		Admin: seedusecases.AdminSeed{
			Username: file.Admin.Username,
			Password: file.Admin.Password,
			Email:    file.Admin.Email,
		},
		Plans: make([]seedusecases.PlanSeed, 0, len(file.Plans)),
	}

	for _, p := range file.Plans {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return seedusecases.Catalog{}, fmt.Errorf("invalid price %q for plan %q: %w", p.Price, p.Name, err)
		}
		catalog.Plans = append(catalog.Plans, seedusecases.PlanSeed{
			Name:     p.Name,
			Duration: p.Duration,
			Price:    price,
			Features: p.Features,
			Popular:  p.Popular,
		})
	}

	return catalog, nil
}
