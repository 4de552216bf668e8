package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"cv-analyzer/internal/cv"
	"cv-analyzer/internal/recommend"
	"cv-analyzer/internal/types"
)

// Below this many years the report suggests gaining more experience first.
const lowExperienceYears = 2

var (
	whitespace = regexp.MustCompile(`\s+`)
	// Stricter than the API's pattern: exactly a 3-3-4 grouping.
	localPhonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

type Report struct {
	Filename        string
	Emails          []string
	PhoneNumbers    []string
	Education       []string
	ExperienceYears int
	LowExperience   bool
	Skills          []string
	Recommendations []recommend.Recommendation
	Entities        json.RawMessage
	TextSample      string
}

// CleanText collapses runs of whitespace into single spaces.
func CleanText(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// PhoneNumbers extracts 3-3-4 numbers from text, deduplicated in first-seen order.
func PhoneNumbers(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range localPhonePattern.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// ExperienceYears reads experience_years, treating the sentinel or anything
// else non-numeric as zero.
func ExperienceYears(raw json.RawMessage) int {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}

// BuildReport combines the API result with the locally extracted text.
func BuildReport(filename string, res *AnalyzeResult, localText string, engine *recommend.Engine) Report {
	text := CleanText(localText)
	years := ExperienceYears(res.ExperienceYears)

	var skills []string
	for _, s := range res.Skills {
		if s != types.NotFound {
			skills = append(skills, s)
		}
	}

	return Report{
		Filename:        filename,
		Emails:          res.ContactInfo.Emails,
		PhoneNumbers:    PhoneNumbers(text),
		Education:       res.Education,
		ExperienceYears: years,
		LowExperience:   years < lowExperienceYears,
		Skills:          skills,
		Recommendations: engine.RecommendWithExperience(skills, years).Value(),
		Entities:        res.BertAnalysis,
		TextSample:      cv.Truncate(text, 500),
	}
}

func (r Report) Render(w io.Writer) error {
	p := &printer{w: w}

	p.printf("CV analysis: %s\n\n", r.Filename)
	p.printf("Email:      %s\n", strings.Join(r.Emails, ", "))
	p.printf("Phone:      %s\n", orNA(strings.Join(r.PhoneNumbers, ", ")))
	p.printf("Education:\n")
	for _, e := range r.Education {
		p.printf("  %s\n", e)
	}
	if r.ExperienceYears > 0 {
		p.printf("Experience: %d years\n", r.ExperienceYears)
	} else {
		p.printf("Experience: %s\n", orNA(""))
	}
	if r.LowExperience {
		p.printf("Warning: limited experience; some employers may expect more before you apply.\n")
	}
	p.printf("Skills:     %s\n\n", orNA(strings.Join(r.Skills, ", ")))

	if len(r.Recommendations) == 0 {
		p.printf("No employers match your current skills.\n")
	} else {
		p.printf("Matching employers:\n")
		for _, rec := range r.Recommendations {
			line := "  " + rec.Company
			if len(rec.MissingSkills) > 0 {
				line += fmt.Sprintf(" (missing skills: %s)", strings.Join(rec.MissingSkills, ", "))
			}
			if rec.ExperienceNeeded != nil && *rec.ExperienceNeeded > 0 {
				line += fmt.Sprintf(" | needs %d more years of experience", *rec.ExperienceNeeded)
			} else {
				line += " | you have enough experience"
			}
			p.printf("%s\n", line)
		}
	}

	p.printf("\nEntities:\n%s\n", indentJSON(r.Entities))
	p.printf("\nText sample:\n%s\n", r.TextSample)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func orNA(s string) string {
	if s == "" {
		return "not available"
	}
	return s
}

func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "  " + types.NotFound
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "  " + string(raw)
	}
	out, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		return "  " + string(raw)
	}
	return "  " + string(out)
}
