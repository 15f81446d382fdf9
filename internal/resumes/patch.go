package resumes

// Patch carries a top-level merge: every non-nil field replaces the
// corresponding section of the stored document wholesale, nil fields are
// untouched. Arrays are replaced, never merged element-wise. Image URLs are
// deliberately absent; they move only through the asset manager.
type Patch struct {
	Title          *string           `json:"title,omitempty"`
	Template       *Template         `json:"template,omitempty"`
	ProfileInfo    *ProfileInfo      `json:"profileInfo,omitempty"`
	ContactInfo    *ContactInfo      `json:"contactInfo,omitempty"`
	WorkExperience *[]WorkExperience `json:"workExperience,omitempty"`
	Education      *[]Education      `json:"education,omitempty"`
	Skills         *[]Skill          `json:"skills,omitempty"`
	Projects       *[]Project        `json:"projects,omitempty"`
	Certifications *[]Certification  `json:"certifications,omitempty"`
	Languages      *[]Language       `json:"languages,omitempty"`
	Interests      *[]string         `json:"interests,omitempty"`
}

func (p Patch) apply(r *Resume) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Template != nil {
		r.Template = *p.Template
	}
	if p.ProfileInfo != nil {
		// The stored image URL survives a profileInfo replace.
		imageURL := r.ProfileInfo.ProfileImageURL
		r.ProfileInfo = *p.ProfileInfo
		r.ProfileInfo.ProfileImageURL = imageURL
	}
	if p.ContactInfo != nil {
		r.ContactInfo = *p.ContactInfo
	}
	if p.WorkExperience != nil {
		r.WorkExperience = *p.WorkExperience
	}
	if p.Education != nil {
		r.Education = *p.Education
	}
	if p.Skills != nil {
		r.Skills = *p.Skills
	}
	if p.Projects != nil {
		r.Projects = *p.Projects
	}
	if p.Certifications != nil {
		r.Certifications = *p.Certifications
	}
	if p.Languages != nil {
		r.Languages = *p.Languages
	}
	if p.Interests != nil {
		r.Interests = *p.Interests
	}
}
