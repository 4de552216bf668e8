package api

import (
	"cv-analyzer/internal/cv"
	"cv-analyzer/internal/recommend"
	"cv-analyzer/internal/types"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ContactInfoResponse struct {
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// AnalyzeResponse keeps the legacy wire shape: several keys hold either a
// value or a sentinel string.
type AnalyzeResponse struct {
	Message             string              `json:"message"`
	ContactInfo         ContactInfoResponse `json:"contact_info"`
	Skills              []string            `json:"skills"`
	ExperienceYears     any                 `json:"experience_years" swaggertype:"string" example:"4"`
	Education           []string            `json:"education"`
	BertAnalysis        any                 `json:"bert_analysis" swaggertype:"object"`
	JobRecommendations  any                 `json:"job_recommendations" swaggertype:"array,object"`
	ExtractedTextSample string              `json:"extracted_text_sample"`
}

type RecommendRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
}

type RecommendResponse struct {
	Recommendations any `json:"recommendations" swaggertype:"array,object"`
}

const textSampleLen = 500

func newAnalyzeResponse(parsed *cv.ParsedCV, a *cv.Analysis, recs types.Field[[]recommend.Recommendation]) AnalyzeResponse {
	return AnalyzeResponse{
		Message: "✅ Processed file: " + parsed.Filename,
		ContactInfo: ContactInfoResponse{
			Emails:       types.ListOr(a.Contact.Emails, types.NotFound),
			PhoneNumbers: types.ListOr(a.Contact.PhoneNumbers, types.NotFound),
		},
		Skills:              types.ListOr(a.Skills, types.NotFound),
		ExperienceYears:     a.Experience.Or(types.NotFound),
		Education:           types.ListOr(a.Education, types.NotFound),
		BertAnalysis:        a.Entities.Or(types.NotFound),
		JobRecommendations:  recs.Or(types.NoSuitableJobs),
		ExtractedTextSample: cv.Truncate(parsed.FullText, textSampleLen),
	}
}
