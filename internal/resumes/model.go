package resumes

import "time"

// Resume is a user-owned résumé document. Section arrays preserve insertion
// order; that order is the display order.
type Resume struct {
	ID             string           `json:"id"`
	OwnerID        string           `json:"ownerId"`
	Title          string           `json:"title"`
	ThumbnailURL   string           `json:"thumbnailUrl,omitempty"`
	Template       Template         `json:"template"`
	ProfileInfo    ProfileInfo      `json:"profileInfo"`
	ContactInfo    ContactInfo      `json:"contactInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Interests      []string         `json:"interests"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Template selects the client-side visual template; the server never
// interprets it beyond storage.
type Template struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
}

type ProfileInfo struct {
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	FullName        string `json:"fullName"`
	Designation     string `json:"designation"`
	Summary         string `json:"summary"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHub      string `json:"github"`
	LiveDemo    string `json:"liveDemo"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}
