package models

// WaitingLearner is seed data for a learner currently looking for a
// group session in one subject. Only the booking wizard reads these,
// to offer study partner candidates.
type WaitingLearner struct {
	ID           string `gorm:"primaryKey;size:50" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Avatar       string `gorm:"size:10" json:"avatar"`
	SubjectID    string `gorm:"size:50;not null" json:"subject"`
	WaitingSince string `gorm:"size:50" json:"waiting_since"`
}
