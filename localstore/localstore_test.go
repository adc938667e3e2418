package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seifeddine26/peer_learn/bookingflow"
	"github.com/seifeddine26/peer_learn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "store.json"))
}

func TestMissingFileIsEmptyDefaults(t *testing.T) {
	s := newTestStore(t)

	value, err := s.Get(bookingflow.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "", value)

	sessions, err := s.ReadAll()
	require.NoError(t, err)
	require.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set(bookingflow.KeyUserName, "Seif Eddine"))
	require.NoError(t, s.Set(bookingflow.KeyUserEmail, "seif@example.tn"))

	name, err := s.Get(bookingflow.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Seif Eddine", name)

	// A second store on the same file sees the same data.
	reopened := New(s.path)
	email, err := reopened.Get(bookingflow.KeyUserEmail)
	require.NoError(t, err)
	assert.Equal(t, "seif@example.tn", email)
}

func TestAppendReadAllKeepsOrder(t *testing.T) {
	s := newTestStore(t)

	first := models.BookedSession{
		ID: "session-1", TeacherName: "Yassine Ben Ali", Subject: "Mathematics",
		Date: "2024-01-16", Time: "14:00",
		SessionType: models.SessionIndividual, LocationType: models.LocationOnline,
		Status: models.SessionStatusScheduled, Partners: []string{},
	}
	second := models.BookedSession{
		ID: "session-2", TeacherName: "Fatma Gharbi", Subject: "Biology",
		Date: "2024-01-17", Time: "10:00",
		SessionType: models.SessionGroup, LocationType: models.LocationInPerson,
		Status: models.SessionStatusScheduled, Partners: []string{"Youssef Ben Ali", "Fatma Trabelsi"},
	}

	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))

	got, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestAppendNeverRejectsDuplicates(t *testing.T) {
	s := newTestStore(t)
	session := models.BookedSession{ID: "session-1", TeacherName: "Yassine Ben Ali", Partners: []string{}}

	require.NoError(t, s.Append(session))
	require.NoError(t, s.Append(session))

	got, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClearRemovesOnlyProfileKeys(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set(bookingflow.KeyUserName, "Seif Eddine"))
	require.NoError(t, s.Set(bookingflow.KeyUserRoles, `["learner"]`))
	require.NoError(t, s.Append(models.BookedSession{ID: "session-1", Partners: []string{}}))

	require.NoError(t, s.Clear())

	name, err := s.Get(bookingflow.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "", name)
	roles, err := s.Get(bookingflow.KeyUserRoles)
	require.NoError(t, err)
	assert.Equal(t, "", roles)

	sessions, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionsWireFormat(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(models.BookedSession{
		ID: "session-1700000000000", TeacherName: "Yassine Ben Ali", Subject: "Mathematics",
		Date: "2024-01-16", Time: "14:00",
		SessionType: models.SessionIndividual, LocationType: models.LocationOnline,
		Status: models.SessionStatusScheduled, Partners: []string{},
	}))

	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "bookedSessions")

	encoded, err := s.Get(KeyBookedSessions)
	require.NoError(t, err)
	assert.Contains(t, encoded, `"teacherName":"Yassine Ben Ali"`)
	assert.Contains(t, encoded, `"sessionType":"individual"`)
	assert.Contains(t, encoded, `"locationType":"online"`)
	assert.Contains(t, encoded, `"isTeaching":false`)
}
