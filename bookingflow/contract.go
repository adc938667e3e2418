package bookingflow

import "github.com/seifeddine26/peer_learn/models"

// SessionRepository is the persistence boundary for committed bookings.
// Append never rejects a record and ReadAll returns every previously
// appended record oldest first, an empty slice if none exist yet.
type SessionRepository interface {
	Append(session models.BookedSession) error
	ReadAll() ([]models.BookedSession, error)
}

// ProfileStore holds the signed-in profile keys (userName, userEmail,
// userRoles, userSubjects). Get returns "" for a missing key; Clear
// removes every profile key at once, as logout does.
type ProfileStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Clear() error
}

const (
	KeyUserName     = "userName"
	KeyUserEmail    = "userEmail"
	KeyUserRoles    = "userRoles"
	KeyUserSubjects = "userSubjects"
)
