package database

import (
	"log"

	"github.com/seifeddine26/peer_learn/models"
	"gorm.io/gorm"
)

// SeedCatalog loads the static reference data (subjects, tutors,
// waiting learners, study groups) on first boot. The catalogs are
// immutable at runtime, so an already-seeded database is left alone.
func SeedCatalog() {
	var count int64
	if err := DB.Model(&models.Subject{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check subject catalog: %v", err)
		return
	}
	if count > 0 {
		log.Println("Catalog already seeded.")
		return
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		for _, subject := range models.DefaultSubjects() {
			if err := tx.Create(&subject).Error; err != nil {
				return err
			}
		}
		for _, tutor := range models.DefaultTutors() {
			if err := tx.Create(&tutor).Error; err != nil {
				return err
			}
		}
		for _, learner := range models.DefaultWaitingLearners() {
			if err := tx.Create(&learner).Error; err != nil {
				return err
			}
		}
		for _, group := range models.DefaultStudyGroups() {
			if err := tx.Create(&group).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("🔥 Failed to seed catalog: %v", err)
		return
	}

	log.Println("✅ Catalog seeded successfully")
}
