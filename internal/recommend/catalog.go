package recommend

import "cv-analyzer/internal/config"

// FromSpecs converts catalog entries into engine input.
func FromSpecs(specs []config.EmployerSpec) []Employer {
	out := make([]Employer, 0, len(specs))
	for _, s := range specs {
		out = append(out, Employer{
			Name:           s.Name,
			RequiredSkills: s.RequiredSkills,
			MinExperience:  s.MinExperience,
		})
	}
	return out
}
