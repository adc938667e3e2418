package models

type StudyGroup struct {
	ID              string             `gorm:"primaryKey;size:50" json:"id"`
	SubjectID       string             `gorm:"size:50;not null" json:"subject"`
	Title           string             `gorm:"size:255;not null" json:"title"`
	Description     string             `gorm:"type:text" json:"description"`
	Members         []StudyGroupMember `gorm:"foreignKey:GroupID" json:"members"`
	MaxMembers      int                `gorm:"not null" json:"max_members"`
	Date            string             `gorm:"size:10;not null" json:"date"`
	Time            string             `gorm:"size:5;not null" json:"time"`
	Location        LocationType       `gorm:"size:20;not null" json:"location"`
	LocationDetails string             `gorm:"size:255" json:"location_details"`
	Host            string             `gorm:"size:255;not null" json:"host"`
	InviteCode      *string            `gorm:"size:10;unique" json:"invite_code,omitempty"`
}

type StudyGroupMember struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	GroupID string `gorm:"size:50;not null" json:"-"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Avatar  string `gorm:"size:10" json:"avatar"`
}

func (g *StudyGroup) IsFull() bool {
	return len(g.Members) >= g.MaxMembers
}

func (g *StudyGroup) HasMember(name string) bool {
	for _, m := range g.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}
