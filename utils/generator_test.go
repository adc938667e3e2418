package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "session-1705312800000", NewSessionID(at))
}

func TestNewSessionIDMonotonic(t *testing.T) {
	earlier := NewSessionID(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	later := NewSessionID(time.Date(2024, 1, 15, 10, 0, 1, 0, time.UTC))
	assert.NotEqual(t, earlier, later)
}
