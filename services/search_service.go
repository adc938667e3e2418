package services

import (
	"strings"

	"github.com/seifeddine26/peer_learn/models"
)

const (
	PriceFilterAll  = "all"
	PriceFilterFree = "free"
	PriceFilterPaid = "paid"
)

// TutorFilter narrows the catalog. The zero-ish filter (empty query,
// subject "all", min rating 0, price "all") passes everything.
type TutorFilter struct {
	Query     string
	SubjectID string  // "all" or "" means any subject
	MinRating float64 // 0..5
	Price     string  // all | free | paid
}

// FilterTutors is a pure predicate over the catalog: it only filters,
// never reorders, so results keep catalog order and re-running on
// every keystroke is safe.
func FilterTutors(tutors []models.Tutor, subjects []models.Subject, f TutorFilter) []models.Tutor {
	out := make([]models.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if matchesFilter(t, subjects, f) {
			out = append(out, t)
		}
	}
	return out
}

func matchesFilter(t models.Tutor, subjects []models.Subject, f TutorFilter) bool {
	if f.Query != "" {
		query := strings.ToLower(f.Query)
		matchesName := strings.Contains(strings.ToLower(t.Name), query)
		matchesSubject := false
		for _, id := range t.SubjectIDs() {
			name := models.SubjectNameByID(subjects, id)
			if strings.Contains(strings.ToLower(name), query) {
				matchesSubject = true
				break
			}
		}
		if !matchesName && !matchesSubject {
			return false
		}
	}

	if f.SubjectID != "" && f.SubjectID != "all" && !t.TeachesSubject(f.SubjectID) {
		return false
	}

	if t.RatingAverage < f.MinRating {
		return false
	}

	switch f.Price {
	case PriceFilterFree:
		if t.IsPaid() {
			return false
		}
	case PriceFilterPaid:
		if !t.IsPaid() {
			return false
		}
	}

	return true
}
