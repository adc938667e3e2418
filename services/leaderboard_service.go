package services

import (
	"sort"

	"github.com/seifeddine26/peer_learn/models"
)

// Positions at or above this rank grant premium pricing eligibility.
// The flag is computed positionally so it keeps working for catalogs
// larger than the seed data.
const premiumRankCutoff = 20

const podiumCutoff = 3

type RankedTutor struct {
	models.Tutor
	TotalScore float64 `json:"total_score"`
	Rank       int     `json:"rank"`
	IsPremium  bool    `json:"is_premium"`
	OnPodium   bool    `json:"on_podium"`
}

// Score rewards both quality and volume: a tutor with a high average
// but few sessions ranks below one with a slightly lower average and
// far more sessions.
func Score(t models.Tutor) float64 {
	return t.RatingAverage * float64(t.RatingCount)
}

// RankTutors orders the catalog by descending score, ties broken by
// ascending tutor id, and assigns 1-based ranks plus the positional
// premium and podium flags.
func RankTutors(tutors []models.Tutor) []RankedTutor {
	ranked := make([]RankedTutor, 0, len(tutors))
	for _, t := range tutors {
		ranked = append(ranked, RankedTutor{Tutor: t, TotalScore: Score(t)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].IsPremium = ranked[i].Rank <= premiumRankCutoff
		ranked[i].OnPodium = ranked[i].Rank <= podiumCutoff
	}
	return ranked
}
