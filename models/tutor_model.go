package models

import "time"

type Tutor struct {
	ID            string     `gorm:"primaryKey;size:50" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Email         string     `gorm:"size:255;not null;unique" json:"email"`
	Avatar        *string    `gorm:"size:255" json:"avatar,omitempty"`
	Roles         []string   `gorm:"serializer:json" json:"roles"`
	Subjects      []*Subject `gorm:"many2many:tutor_subjects;" json:"subjects"`
	IsTopTeacher  bool       `gorm:"default:false" json:"is_top_teacher"`
	RatingAverage float64    `gorm:"not null;default:0" json:"rating_average"`
	RatingCount   int        `gorm:"not null;default:0" json:"rating_count"`

	// Meaningful only while IsTopTeacher holds; otherwise sessions are free.
	PricePerHour *float64 `gorm:"type:numeric(10,2)" json:"price_per_hour,omitempty"`

	Bio          *string            `gorm:"type:text" json:"bio,omitempty"`
	Availability []TutorAvailability `gorm:"foreignKey:TutorID" json:"availability,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type TutorAvailability struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	TutorID  string  `gorm:"size:50;not null" json:"-"`
	Day      string  `gorm:"size:20;not null" json:"day"`
	Time     string  `gorm:"size:20;not null" json:"time"`
	Location *string `gorm:"size:100" json:"location,omitempty"`
}

func (t *Tutor) SubjectIDs() []string {
	ids := make([]string, 0, len(t.Subjects))
	for _, s := range t.Subjects {
		ids = append(ids, s.ID)
	}
	return ids
}

func (t *Tutor) TeachesSubject(subjectID string) bool {
	for _, s := range t.Subjects {
		if s.ID == subjectID {
			return true
		}
	}
	return false
}

// IsPaid reports whether booking this tutor costs anything: only top
// teachers with a price set charge for sessions.
func (t *Tutor) IsPaid() bool {
	return t.IsTopTeacher && t.PricePerHour != nil
}
