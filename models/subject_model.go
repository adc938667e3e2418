package models

// Subject is a static catalog entry. IDs are the natural keys the whole
// platform refers to (e.g. "math"), unique within the catalog.
type Subject struct {
	ID       string `gorm:"primaryKey;size:50" json:"id"`
	Name     string `gorm:"size:100;not null;unique" json:"name"`
	Category string `gorm:"size:50;not null" json:"category"`
	Icon     string `gorm:"size:10" json:"icon"`
}

func SubjectNameByID(subjects []Subject, id string) string {
	for _, s := range subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return "Unknown"
}
