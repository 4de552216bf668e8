// Package recommend matches a candidate's skills against employer requirements.
package recommend

import (
	"strings"

	"cv-analyzer/internal/types"
)

// Employer is one row of the static requirement table.
type Employer struct {
	Name           string
	RequiredSkills []string
	MinExperience  int
}

type Recommendation struct {
	Company       string   `json:"company"`
	MissingSkills []string `json:"missing_skills"`
	// Set only by the experience-aware variant.
	ExperienceNeeded *int `json:"experience_needed,omitempty"`
}

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	employers []Employer
}

func NewEngine(employers []Employer) *Engine {
	return &Engine{employers: copyEmployers(employers)}
}

// Employers returns a copy of the requirement table.
func (e *Engine) Employers() []Employer { return copyEmployers(e.employers) }

func copyEmployers(employers []Employer) []Employer {
	cp := make([]Employer, len(employers))
	for i, e := range employers {
		cp[i] = Employer{
			Name:           e.Name,
			RequiredSkills: append([]string(nil), e.RequiredSkills...),
			MinExperience:  e.MinExperience,
		}
	}
	return cp
}

// Recommend lists employers whose requirements the candidate partly meets.
// An employer is included only when at least one required skill is present;
// zero overlap means the employer is left out entirely.
func (e *Engine) Recommend(skills []string) types.Field[[]Recommendation] {
	return e.match(skills, nil)
}

// RecommendWithExperience applies the same inclusion rule and also reports
// how many more years each employer expects.
func (e *Engine) RecommendWithExperience(skills []string, years int) types.Field[[]Recommendation] {
	return e.match(skills, &years)
}

func (e *Engine) match(skills []string, years *int) types.Field[[]Recommendation] {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = struct{}{}
	}

	var recs []Recommendation
	for _, emp := range e.employers {
		missing := missingSkills(emp.RequiredSkills, have)
		if len(missing) >= len(emp.RequiredSkills) {
			continue
		}

		rec := Recommendation{Company: emp.Name, MissingSkills: missing}
		if years != nil {
			need := max(0, emp.MinExperience-*years)
			rec.ExperienceNeeded = &need
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		return types.Missing[[]Recommendation]()
	}
	return types.Found(recs)
}

// missingSkills keeps the configured spelling and order.
func missingSkills(required []string, have map[string]struct{}) []string {
	missing := []string{}
	for _, r := range required {
		if _, ok := have[strings.ToLower(r)]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
