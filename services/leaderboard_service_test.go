package services

import (
	"fmt"
	"testing"

	"github.com/seifeddine26/peer_learn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRewardsVolume(t *testing.T) {
	quality := models.Tutor{RatingAverage: 5.0, RatingCount: 10}
	volume := models.Tutor{RatingAverage: 4.5, RatingCount: 50}
	assert.Greater(t, Score(volume), Score(quality))
	assert.InDelta(t, 50.0, Score(quality), 1e-9)
}

func TestRankTutorsOrdersByScore(t *testing.T) {
	ranked := RankTutors(models.DefaultTutors())
	require.Len(t, ranked, 6)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].TotalScore, ranked[i].TotalScore)
		assert.Equal(t, i+1, ranked[i].Rank)
	}

	// Mariem: 4.8*52=249.6, Yassine: 4.9*47=230.3.
	assert.Equal(t, "Mariem Trabelsi", ranked[0].Name)
	assert.Equal(t, "Yassine Ben Ali", ranked[1].Name)
}

func TestRankTutorsBreaksTiesByID(t *testing.T) {
	tutors := []models.Tutor{
		{ID: "b", Name: "B", RatingAverage: 4.0, RatingCount: 10},
		{ID: "a", Name: "A", RatingAverage: 4.0, RatingCount: 10},
		{ID: "c", Name: "C", RatingAverage: 5.0, RatingCount: 10},
	}
	ranked := RankTutors(tutors)
	assert.Equal(t, "c", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
	assert.Equal(t, "b", ranked[2].ID)
}

func TestRankTutorsPositionalFlags(t *testing.T) {
	tutors := make([]models.Tutor, 0, 25)
	for i := 0; i < 25; i++ {
		tutors = append(tutors, models.Tutor{
			ID:            fmt.Sprintf("%03d", i),
			RatingAverage: 4.0,
			RatingCount:   100 - i,
		})
	}

	ranked := RankTutors(tutors)
	require.Len(t, ranked, 25)

	premium := 0
	podium := 0
	for _, r := range ranked {
		if r.IsPremium {
			premium++
			assert.LessOrEqual(t, r.Rank, 20)
		}
		if r.OnPodium {
			podium++
			assert.LessOrEqual(t, r.Rank, 3)
		}
	}
	assert.Equal(t, 20, premium)
	assert.Equal(t, 3, podium)
}

func TestRankTutorsLeavesInputAlone(t *testing.T) {
	tutors := models.DefaultTutors()
	_ = RankTutors(tutors)
	assert.Equal(t, "1", tutors[0].ID)
	assert.Equal(t, "6", tutors[5].ID)
}
