package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/seifeddine26/peer_learn/models"
	"gorm.io/gorm"
)

const inviteCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSessionID builds the process-unique booked-session id: a fixed
// prefix plus a millisecond timestamp.
func NewSessionID(t time.Time) string {
	return fmt.Sprintf("session-%d", t.UnixMilli())
}

func GenerateUniqueInviteCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, inviteCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var group models.StudyGroup
		err := tx.Where("invite_code = ?", code).First(&group).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
