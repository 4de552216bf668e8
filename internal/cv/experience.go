package cv

import (
	"regexp"
	"strconv"

	"cv-analyzer/internal/types"
)

var experiencePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:years?|yrs?|year|experience|of experience)`)

// ExtractExperienceYears returns the largest "<n> years"-style number in text.
func ExtractExperienceYears(text string) types.Field[int] {
	best, found := 0, false
	for _, m := range experiencePattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !found || n > best {
			best, found = n, true
		}
	}
	if !found {
		return types.Missing[int]()
	}
	return types.Found(best)
}
