package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	// A user can act as teacher, learner or both.
	Roles    []string `gorm:"serializer:json" json:"roles"`
	Subjects []string `gorm:"serializer:json" json:"subjects"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	Bio               *string `gorm:"type:text" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
