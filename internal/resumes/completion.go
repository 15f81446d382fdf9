package resumes

import (
	"math"
	"strings"
)

// Per-record weights: the number of fields that matter on each record type.
const (
	profileSlots        = 3
	contactSlots        = 2
	workWeight          = 5
	educationWeight     = 4
	skillWeight         = 2
	projectWeight       = 4
	certificationWeight = 3
	languageWeight      = 2
)

// CompletionScore reports how much of a résumé is filled in, 0-100.
// String fields count when non-empty after trimming; progress fields count
// when strictly positive. The input is never mutated and the result is
// stable across calls.
func CompletionScore(r Resume) int {
	completed := 0
	total := 0

	total += profileSlots
	completed += countFilled(r.ProfileInfo.FullName, r.ProfileInfo.Designation, r.ProfileInfo.Summary)

	total += contactSlots
	completed += countFilled(r.ContactInfo.Email, r.ContactInfo.Phone)

	for _, w := range r.WorkExperience {
		total += workWeight
		completed += countFilled(w.Company, w.Role, w.StartDate, w.EndDate, w.Description)
	}
	for _, e := range r.Education {
		total += educationWeight
		completed += countFilled(e.Degree, e.Institution, e.StartDate, e.EndDate)
	}
	for _, s := range r.Skills {
		total += skillWeight
		completed += countFilled(s.Name)
		if s.Progress > 0 {
			completed++
		}
	}
	for _, p := range r.Projects {
		total += projectWeight
		completed += countFilled(p.Title, p.Description, p.GitHub, p.LiveDemo)
	}
	for _, c := range r.Certifications {
		total += certificationWeight
		completed += countFilled(c.Title, c.Issuer, c.Year)
	}
	for _, l := range r.Languages {
		total += languageWeight
		completed += countFilled(l.Name)
		if l.Progress > 0 {
			completed++
		}
	}
	for _, interest := range r.Interests {
		total++
		completed += countFilled(interest)
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func countFilled(values ...string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}
