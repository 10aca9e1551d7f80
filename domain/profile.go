package domain

// CandidateProfile is the canonical structured form of a résumé produced by
// the language model. Every section is optional: a nil pointer or empty slice
// means the résumé did not contain that section, never that it was empty.
type CandidateProfile struct {
	Contact        *ContactInfo      `json:"contact,omitempty"`
	Summary        *string           `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Skills         *SkillGroups      `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
	AdditionalInfo *string           `json:"additional_info,omitempty"`
	Confidence     map[string]string `json:"confidence,omitempty"` // section -> high|medium|low
}

type ContactInfo struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
}

type ExperienceEntry struct {
	Company     *string  `json:"company,omitempty"`
	Title       *string  `json:"title,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

type EducationEntry struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartYear   *string `json:"start_year,omitempty"`
	EndYear     *string `json:"end_year,omitempty"`
}

type SkillGroups struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Tools     []string `json:"tools,omitempty"`
	Other     []string `json:"other,omitempty"`
}

type ProjectEntry struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
}
