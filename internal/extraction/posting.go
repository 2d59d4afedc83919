package extraction

import "jobtrack-backend/internal/llm"

// Posting holds the candidate fields extracted from a pasted job posting.
// It is transient: it only pre-fills a new job record and is never persisted.
// Every field is a plain string, empty when the model found nothing.
type Posting struct {
	Company         string `json:"company"`
	Role            string `json:"role"`
	Salary          string `json:"salary"`
	URL             string `json:"url"`
	Notes           string `json:"notes"`
	ExperienceYears string `json:"experienceYears"`
	Field           string `json:"field"`
}

// Normalize decodes the raw model response into a Posting. Absent fields
// come back as empty strings via the zero value; no business validation
// happens here, that belongs to record creation.
func Normalize(raw string) (Posting, error) {
	var posting Posting
	if err := llm.DecodeObject(raw, &posting); err != nil {
		return Posting{}, err
	}
	return posting, nil
}

// Merge fills the empty fields of current with extracted values. A field the
// user has already typed into is never overwritten by the extractor.
func Merge(extracted, current Posting) Posting {
	out := current
	if out.Company == "" {
		out.Company = extracted.Company
	}
	if out.Role == "" {
		out.Role = extracted.Role
	}
	if out.Salary == "" {
		out.Salary = extracted.Salary
	}
	if out.URL == "" {
		out.URL = extracted.URL
	}
	if out.Notes == "" {
		out.Notes = extracted.Notes
	}
	if out.ExperienceYears == "" {
		out.ExperienceYears = extracted.ExperienceYears
	}
	if out.Field == "" {
		out.Field = extracted.Field
	}
	return out
}
