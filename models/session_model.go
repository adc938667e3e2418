package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	SessionIndividual SessionType = "individual"
	SessionGroup      SessionType = "group"
)

type LocationType string

const (
	LocationOnline   LocationType = "online"
	LocationInPerson LocationType = "in-person"
)

const SessionStatusScheduled = "scheduled"

// BookedSession is the record a completed wizard run appends. The
// lifecycle is append-only: no update or delete path exists, the
// dashboard only reads the full set back. The JSON field names match
// the persisted bookedSessions wire format.
type BookedSession struct {
	ID           string       `gorm:"primaryKey;size:50" json:"id"`
	OwnerID      *uuid.UUID   `gorm:"type:uuid;index" json:"-"`
	TeacherName  string       `gorm:"size:255;not null" json:"teacherName"`
	Subject      string       `gorm:"size:100;not null" json:"subject"`
	Date         string       `gorm:"size:10;not null" json:"date"`
	Time         string       `gorm:"size:5;not null" json:"time"`
	SessionType  SessionType  `gorm:"size:20;not null" json:"sessionType"`
	LocationType LocationType `gorm:"size:20;not null" json:"locationType"`
	Status       string       `gorm:"size:20;not null" json:"status"`
	IsTeaching   bool         `gorm:"not null;default:false" json:"isTeaching"`
	Partners     []string     `gorm:"serializer:json" json:"partners"`
	RecapURL     *string      `gorm:"size:255" json:"recap_url,omitempty"`

	CreatedAt time.Time `json:"-"`
}
