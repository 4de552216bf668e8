package recommend

import (
	"testing"

	"cv-analyzer/internal/config"
	"cv-analyzer/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abc = []Employer{{Name: "Acme", RequiredSkills: []string{"A", "B", "C"}, MinExperience: 3}}

func TestRecommendOmitsEmployerWithZeroOverlap(t *testing.T) {
	// Questionable policy kept as-is: "missing everything" is useful
	// information, but such employers are dropped instead of reported.
	got := NewEngine(abc).Recommend(nil)

	assert.False(t, got.IsFound())
	assert.Equal(t, types.NoSuitableJobs, got.Or(types.NoSuitableJobs))
}

func TestRecommendIncludesPartialMatch(t *testing.T) {
	got := NewEngine(abc).Recommend([]string{"A"})

	require.True(t, got.IsFound())
	assert.Equal(t, []Recommendation{{Company: "Acme", MissingSkills: []string{"B", "C"}}}, got.Value())
}

func TestRecommendFullMatchHasNoMissingSkills(t *testing.T) {
	got := NewEngine(abc).Recommend([]string{"c", "b", "a"})

	require.True(t, got.IsFound())
	assert.Empty(t, got.Value()[0].MissingSkills)
	assert.NotNil(t, got.Value()[0].MissingSkills, "serialised as [] rather than null")
}

func TestRecommendIsCaseInsensitive(t *testing.T) {
	eng := NewEngine([]Employer{{Name: "Amazon", RequiredSkills: []string{"Node.js", "Express.js", "AWS"}}})

	got := eng.Recommend([]string{"aws", "python"})

	require.True(t, got.IsFound())
	assert.Equal(t, []string{"Node.js", "Express.js"}, got.Value()[0].MissingSkills)
}

func TestRecommendKeepsEmployerOrder(t *testing.T) {
	eng := NewEngine([]Employer{
		{Name: "Second", RequiredSkills: []string{"go"}},
		{Name: "First", RequiredSkills: []string{"go", "sql"}},
		{Name: "Skipped", RequiredSkills: []string{"rust"}},
	})

	got := eng.Recommend([]string{"go"}).Value()
	require.Len(t, got, 2)
	assert.Equal(t, "Second", got[0].Company)
	assert.Equal(t, "First", got[1].Company)
}

func TestRecommendWithExperience(t *testing.T) {
	eng := NewEngine([]Employer{
		{Name: "Google", RequiredSkills: []string{"python", "ml", "ai", "tensorflow"}, MinExperience: 3},
		{Name: "Tesla", RequiredSkills: []string{"automation", "robotics", "ai", "python"}, MinExperience: 5},
		{Name: "Microsoft", RequiredSkills: []string{"c#", "azure", "sql", "dotnet"}, MinExperience: 2},
	})

	got := eng.RecommendWithExperience([]string{"python", "ai"}, 4).Value()
	require.Len(t, got, 2)

	assert.Equal(t, "Google", got[0].Company)
	assert.Equal(t, []string{"ml", "tensorflow"}, got[0].MissingSkills)
	assert.Equal(t, 0, *got[0].ExperienceNeeded)

	assert.Equal(t, "Tesla", got[1].Company)
	assert.Equal(t, 1, *got[1].ExperienceNeeded)
}

func TestAPIVariantLeavesExperienceUnset(t *testing.T) {
	got := NewEngine(abc).Recommend([]string{"A"}).Value()
	assert.Nil(t, got[0].ExperienceNeeded)
}

func TestNewEngineCopiesInput(t *testing.T) {
	emps := []Employer{{Name: "Acme", RequiredSkills: []string{"A"}}}
	eng := NewEngine(emps)
	emps[0].RequiredSkills[0] = "Z"

	assert.Equal(t, "A", eng.Employers()[0].RequiredSkills[0])
}

func TestEmployersReturnsCopy(t *testing.T) {
	eng := NewEngine([]Employer{{Name: "Acme", RequiredSkills: []string{"A", "B"}}})

	got := eng.Employers()
	got[0].Name = "Other"
	got[0].RequiredSkills[0] = "Z"

	assert.Equal(t, "Acme", eng.Employers()[0].Name)
	assert.Equal(t, []Recommendation{{Company: "Acme", MissingSkills: []string{"B"}}}, eng.Recommend([]string{"a"}).Value())
}

func TestDefaultCatalogAPIVariant(t *testing.T) {
	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)
	eng := NewEngine(FromSpecs(catalog.Employers))

	// Only Amazon lists a skill from the extraction vocabulary.
	got := eng.Recommend([]string{"python", "aws"})
	require.True(t, got.IsFound())
	require.Len(t, got.Value(), 1)
	assert.Equal(t, "Amazon", got.Value()[0].Company)

	assert.False(t, eng.Recommend([]string{"python"}).IsFound())
}
