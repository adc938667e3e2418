package database

import (
	"github.com/google/uuid"
	"github.com/seifeddine26/peer_learn/bookingflow"
	"github.com/seifeddine26/peer_learn/models"
)

// SessionRepository is the Postgres-backed session store, scoped to one
// owner so the boundary contract stays the append/read-all pair the
// booking flow expects.
type SessionRepository struct {
	ownerID uuid.UUID
}

func NewSessionRepository(ownerID uuid.UUID) *SessionRepository {
	return &SessionRepository{ownerID: ownerID}
}

// Append adds one record. No uniqueness or conflict constraint is
// enforced here.
func (r *SessionRepository) Append(session models.BookedSession) error {
	owner := r.ownerID
	session.OwnerID = &owner
	return DB.Create(&session).Error
}

// ReadAll returns the owner's sessions oldest first, an empty slice
// when none exist.
func (r *SessionRepository) ReadAll() ([]models.BookedSession, error) {
	sessions := []models.BookedSession{}
	err := DB.Where("owner_id = ?", r.ownerID).
		Order("created_at asc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

var _ bookingflow.SessionRepository = (*SessionRepository)(nil)
