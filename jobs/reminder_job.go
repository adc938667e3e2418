package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/seifeddine26/peer_learn/database"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/notifications"
	"github.com/seifeddine26/peer_learn/websocket"
)

// SendSessionReminders nudges learners whose booked session starts in
// roughly one hour. Session slots are stored as separate date and time
// strings, so the window check compares the reconstructed start time.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var sessions []models.BookedSession
	err := database.DB.
		Where("status = ? AND date IN ?", models.SessionStatusScheduled,
			[]string{lowerBound.Format("2006-01-02"), upperBound.Format("2006-01-02")}).
		Find(&sessions).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, session := range sessions {
		start, err := time.ParseInLocation("2006-01-02 15:04", session.Date+" "+session.Time, now.Location())
		if err != nil {
			log.Printf("Skipping session %s: bad slot %q %q", session.ID, session.Date, session.Time)
			continue
		}
		if start.Before(lowerBound) || !start.Before(upperBound) {
			continue
		}
		if session.OwnerID == nil {
			continue
		}

		log.Printf("Sending reminder for session: %s", session.ID)

		websocket.Push(&websocket.Notification{
			UserID:      *session.OwnerID,
			Kind:        "session_reminder",
			Message:     fmt.Sprintf("Your %s session with %s starts in 1 hour", session.Subject, session.TeacherName),
			Description: fmt.Sprintf("%s at %s", session.Date, session.Time),
		})

		var user models.User
		if err := database.DB.First(&user, "id = ?", *session.OwnerID).Error; err != nil {
			continue
		}
		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi %s,</p><p>Your %s session with %s starts at %s.</p>",
			user.FullName, session.Subject, session.TeacherName, session.Time,
		)
		go notifications.SendEmail(user.FullName, user.Email, emailSubject, emailBody)
	}
}
