// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package dataset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/airdefence/internal/models"
)

//go:embed seed/countries.yaml
var embeddedCountries []byte

//go:embed seed/systems.yaml
var embeddedSystems []byte

// Seed is the raw reference data before enrichment.
type Seed struct {
	Countries []models.Country
	Systems   []models.System
}

type countriesDoc struct {
	Countries []models.Country `yaml:"countries"`
}

type systemsDoc struct {
	Systems       []models.System `yaml:"systems"`
	LegacySystems []models.System `yaml:"legacy_systems"`
}

// LoadSeed decodes the embedded reference data. Legacy systems are appended
// after the current ones, which fixes their system_id positions.
func LoadSeed() (*Seed, error) {
	return ParseSeed(embeddedCountries, embeddedSystems)
}

// ParseSeed decodes seed documents from arbitrary bytes.
func ParseSeed(countriesYAML, systemsYAML []byte) (*Seed, error) {
	var cd countriesDoc
	if err := yaml.Unmarshal(countriesYAML, &cd); err != nil {
		return nil, fmt.Errorf("decode countries seed: %w", err)
	}
	var sd systemsDoc
	if err := yaml.Unmarshal(systemsYAML, &sd); err != nil {
		return nil, fmt.Errorf("decode systems seed: %w", err)
	}

	for i := range cd.Countries {
		if !cd.Countries[i].RiskZone.Valid() {
			return nil, fmt.Errorf("country %q: unknown risk zone %q",
				cd.Countries[i].Country, cd.Countries[i].RiskZone)
		}
	}

	systems := make([]models.System, 0, len(sd.Systems)+len(sd.LegacySystems))
	systems = append(systems, sd.Systems...)
	systems = append(systems, sd.LegacySystems...)

	return &Seed{Countries: cd.Countries, Systems: systems}, nil
}
