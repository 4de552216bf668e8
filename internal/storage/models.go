package storage

// Variant selects which employer list a requirement row belongs to.
type Variant string

const (
	VariantAPI       Variant = "api"
	VariantDashboard Variant = "dashboard"
)

// requirementRow is one (employer, skill) pair from employer_requirements.
type requirementRow struct {
	Employer      string
	Skill         string
	MinExperience int
	Position      int
}
