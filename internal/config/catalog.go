package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// EmployerSpec is one employer's requirements as written in the catalog.
type EmployerSpec struct {
	Name           string   `yaml:"name"`
	RequiredSkills []string `yaml:"required_skills"`
	MinExperience  int      `yaml:"min_experience"`
}

// Catalog is the static data the analyzer matches against. It is loaded
// once at start-up and never modified.
type Catalog struct {
	Skills             []string       `yaml:"skills"`
	Employers          []EmployerSpec `yaml:"employers"`
	DashboardEmployers []EmployerSpec `yaml:"dashboard_employers"`
}

// LoadCatalog reads the catalog at path, or the built-in one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if len(c.Skills) == 0 {
		return errors.New("catalog: skills vocabulary is empty")
	}
	for _, list := range [][]EmployerSpec{c.Employers, c.DashboardEmployers} {
		for i, e := range list {
			if e.Name == "" {
				return fmt.Errorf("catalog: employer #%d has no name", i+1)
			}
			if len(e.RequiredSkills) == 0 {
				return fmt.Errorf("catalog: employer %q has no required skills", e.Name)
			}
			if e.MinExperience < 0 {
				return fmt.Errorf("catalog: employer %q has negative min_experience", e.Name)
			}
			// Requirements are a set; a repeated skill would inflate the
			// requirement count used by the inclusion rule.
			seen := make(map[string]struct{}, len(e.RequiredSkills))
			for _, skill := range e.RequiredSkills {
				key := strings.ToLower(strings.TrimSpace(skill))
				if key == "" {
					return fmt.Errorf("catalog: employer %q has an empty required skill", e.Name)
				}
				if _, dup := seen[key]; dup {
					return fmt.Errorf("catalog: employer %q lists required skill %q twice", e.Name, skill)
				}
				seen[key] = struct{}{}
			}
		}
	}
	return nil
}
