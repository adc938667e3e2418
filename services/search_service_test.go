package services

import (
	"testing"

	"github.com/seifeddine26/peer_learn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(tutors []models.Tutor) []string {
	out := make([]string, 0, len(tutors))
	for _, t := range tutors {
		out = append(out, t.Name)
	}
	return out
}

func TestEmptyFilterPassesEverything(t *testing.T) {
	tutors := models.DefaultTutors()
	subjects := models.DefaultSubjects()

	got := FilterTutors(tutors, subjects, TutorFilter{Price: PriceFilterAll})
	require.Len(t, got, len(tutors))
	assert.Equal(t, names(tutors), names(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	tutors := models.DefaultTutors()
	subjects := models.DefaultSubjects()
	f := TutorFilter{Query: "a", MinRating: 4.5, Price: PriceFilterPaid}

	once := FilterTutors(tutors, subjects, f)
	twice := FilterTutors(once, subjects, f)
	assert.Equal(t, names(once), names(twice))
}

func TestQueryMatchesNameCaseInsensitive(t *testing.T) {
	got := FilterTutors(models.DefaultTutors(), models.DefaultSubjects(), TutorFilter{Query: "YASSINE"})
	require.Len(t, got, 1)
	assert.Equal(t, "Yassine Ben Ali", got[0].Name)
}

func TestQueryMatchesSubjectName(t *testing.T) {
	// "chem" hits Chemistry, taught by Amine and Fatma.
	got := FilterTutors(models.DefaultTutors(), models.DefaultSubjects(), TutorFilter{Query: "chem"})
	assert.Equal(t, []string{"Amine Bouazizi", "Fatma Gharbi"}, names(got))
}

func TestSubjectFilter(t *testing.T) {
	tutors := models.DefaultTutors()
	subjects := models.DefaultSubjects()

	got := FilterTutors(tutors, subjects, TutorFilter{SubjectID: "math"})
	assert.Equal(t, []string{"Yassine Ben Ali", "Mohamed Sahli"}, names(got))

	all := FilterTutors(tutors, subjects, TutorFilter{SubjectID: "all"})
	assert.Len(t, all, len(tutors))
}

func TestMinRatingFilter(t *testing.T) {
	got := FilterTutors(models.DefaultTutors(), models.DefaultSubjects(), TutorFilter{MinRating: 4.85})
	assert.Equal(t, []string{"Yassine Ben Ali", "Nour El Houda Jebali", "Fatma Gharbi"}, names(got))
}

func TestPriceBuckets(t *testing.T) {
	tutors := models.DefaultTutors()
	subjects := models.DefaultSubjects()

	// Only top teachers with a price charge; the rest count as free even
	// when a nominal price is on record.
	free := FilterTutors(tutors, subjects, TutorFilter{Price: PriceFilterFree})
	assert.Equal(t, []string{"Amine Bouazizi", "Mohamed Sahli"}, names(free))

	paid := FilterTutors(tutors, subjects, TutorFilter{Price: PriceFilterPaid})
	assert.Equal(t, []string{"Yassine Ben Ali", "Mariem Trabelsi", "Nour El Houda Jebali", "Fatma Gharbi"}, names(paid))
}

func TestCombinedFilters(t *testing.T) {
	got := FilterTutors(models.DefaultTutors(), models.DefaultSubjects(), TutorFilter{
		Query:     "ben",
		SubjectID: "math",
		MinRating: 4.5,
		Price:     PriceFilterPaid,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Yassine Ben Ali", got[0].Name)
}

func TestNoMatchesReturnsEmptySlice(t *testing.T) {
	got := FilterTutors(models.DefaultTutors(), models.DefaultSubjects(), TutorFilter{Query: "nobody"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}
