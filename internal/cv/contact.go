package cv

import (
	"regexp"

	"cv-analyzer/internal/types"

	"github.com/nyaruka/phonenumbers"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+`)
	// Loose on purpose: dates and IDs of the right shape also match.
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{2,3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}\b`)
)

type ContactInfo struct {
	Emails       types.Field[[]string]
	PhoneNumbers types.Field[[]string]
}

// PhoneValidator filters phone candidates. Nil means accept everything.
type PhoneValidator interface {
	Valid(number string) bool
}

// RegionValidator accepts numbers libphonenumber considers valid for a region.
type RegionValidator struct {
	Region string
}

func (v RegionValidator) Valid(number string) bool {
	num, err := phonenumbers.Parse(number, v.Region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// ExtractContactInfo collects emails and phone numbers, deduplicated in
// first-seen order.
func ExtractContactInfo(text string, validator PhoneValidator) ContactInfo {
	emails := uniqueMatches(emailPattern, text)

	var phones []string
	for _, p := range uniqueMatches(phonePattern, text) {
		if validator == nil || validator.Valid(p) {
			phones = append(phones, p)
		}
	}

	return ContactInfo{
		Emails:       nonEmpty(emails),
		PhoneNumbers: nonEmpty(phones),
	}
}

func uniqueMatches(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func nonEmpty(list []string) types.Field[[]string] {
	if len(list) == 0 {
		return types.Missing[[]string]()
	}
	return types.Found(list)
}
