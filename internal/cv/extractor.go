package cv

import (
	"context"

	"cv-analyzer/internal/logger"
	"cv-analyzer/internal/nlp"
	"cv-analyzer/internal/types"

	"golang.org/x/sync/errgroup"
)

// Extractor runs every field extractor over one document. It is built once
// at start-up and only read afterwards.
type Extractor struct {
	tagger     nlp.Tagger
	recognizer EntityRecognizer
	vocabulary Vocabulary
	phones     PhoneValidator
}

// Analysis is the result of all field extractors for one document.
type Analysis struct {
	Contact    ContactInfo
	Skills     types.Field[[]string]
	Experience types.Field[int]
	Education  types.Field[[]string]
	Entities   types.Field[map[string]string]
}

func NewExtractor(tagger nlp.Tagger, recognizer EntityRecognizer, vocabulary Vocabulary, phones PhoneValidator) *Extractor {
	return &Extractor{
		tagger:     tagger,
		recognizer: recognizer,
		vocabulary: vocabulary,
		phones:     phones,
	}
}

// Analyze runs the extractors concurrently. Each writes only its own field.
// A collaborator failure degrades that field to "not found"; it never fails
// the whole analysis.
func (e *Extractor) Analyze(ctx context.Context, text string) *Analysis {
	log := logger.Ctx(ctx)
	a := &Analysis{}

	var g errgroup.Group

	g.Go(func() error {
		a.Contact = ExtractContactInfo(text, e.phones)
		return nil
	})

	g.Go(func() error {
		skills, err := ExtractSkills(text, e.tagger, e.vocabulary)
		if err != nil {
			log.Warn().Err(err).Msg("skill extraction degraded")
		}
		a.Skills = skills
		return nil
	})

	g.Go(func() error {
		a.Experience = ExtractExperienceYears(text)
		return nil
	})

	g.Go(func() error {
		edu, err := ExtractEducation(text, e.tagger)
		if err != nil {
			log.Warn().Err(err).Msg("education extraction degraded")
		}
		a.Education = edu
		return nil
	})

	g.Go(func() error {
		ents, err := AnalyzeEntities(ctx, text, e.recognizer)
		if err != nil {
			log.Warn().Err(err).Msg("entity analysis degraded")
		}
		a.Entities = ents
		return nil
	})

	_ = g.Wait()

	log.Debug().
		Bool("emails", a.Contact.Emails.IsFound()).
		Int("skills", len(a.Skills.Value())).
		Bool("experience", a.Experience.IsFound()).
		Int("education", len(a.Education.Value())).
		Int("entities", len(a.Entities.Value())).
		Msg("analysis finished")

	return a
}
