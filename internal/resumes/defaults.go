package resumes

// NewDefault builds the default-shaped document a new résumé starts from:
// every section array is seeded with one blank record so the editor always
// has a row to fill in.
func NewDefault(ownerID, title string) Resume {
	return Resume{
		OwnerID: ownerID,
		Title:   title,
		Template: Template{
			Theme:        "",
			ColorPalette: []string{},
		},
		ProfileInfo:    ProfileInfo{},
		ContactInfo:    ContactInfo{},
		WorkExperience: []WorkExperience{{}},
		Education:      []Education{{}},
		Skills:         []Skill{{}},
		Projects:       []Project{{}},
		Certifications: []Certification{{}},
		Languages:      []Language{{}},
		Interests:      []string{""},
	}
}
