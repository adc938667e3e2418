package bookingflow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/seifeddine26/peer_learn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

type memRepo struct {
	sessions  []models.BookedSession
	appendErr error
}

func (r *memRepo) Append(s models.BookedSession) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *memRepo) ReadAll() ([]models.BookedSession, error) {
	return r.sessions, nil
}

func newTestFlow(t *testing.T) *Flow {
	t.Helper()
	tutors := models.DefaultTutors()
	f := NewFlow(tutors[0], models.DefaultSubjects(), models.DefaultWaitingLearners())
	f.now = func() time.Time { return fixedNow }
	return f
}

// advance drives the flow through the wizard up to the date/time step.
func advance(t *testing.T, f *Flow, kind models.SessionType, partnerIDs ...string) {
	t.Helper()
	require.NoError(t, f.SelectSessionType(kind))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectSubject("math"))
	require.NoError(t, f.Continue())
	for _, id := range partnerIDs {
		require.NoError(t, f.TogglePartner(id))
	}
	require.NoError(t, f.Continue())
}

func TestGuardBlocksEmptySteps(t *testing.T) {
	f := newTestFlow(t)

	assert.False(t, f.CanProceed())
	err := f.Continue()
	require.Error(t, err)
	assert.Equal(t, StepSessionType, f.Step())

	require.NoError(t, f.SelectSessionType(models.SessionIndividual))
	assert.True(t, f.CanProceed())
	require.NoError(t, f.Continue())

	assert.False(t, f.CanProceed())
	require.Error(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationInPerson))
	require.NoError(t, f.Continue())

	assert.False(t, f.CanProceed())
	require.NoError(t, f.SelectSubject("physics"))
	require.NoError(t, f.Continue())

	// Individual flows sail through the partners step.
	assert.Equal(t, StepPartners, f.Step())
	assert.True(t, f.CanProceed())
	require.NoError(t, f.Continue())

	assert.False(t, f.CanProceed())
	require.NoError(t, f.SelectDate("2024-01-16"))
	assert.False(t, f.CanProceed())
	require.NoError(t, f.SelectTime("10:00"))
	assert.True(t, f.CanProceed())
	assert.True(t, f.AtFinalStep())
}

func TestGroupRequiresAtLeastOnePartner(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionGroup))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectSubject("math"))
	require.NoError(t, f.Continue())

	assert.Equal(t, StepPartners, f.Step())
	assert.False(t, f.CanProceed())
	require.Error(t, f.Continue())

	require.NoError(t, f.TogglePartner("1"))
	assert.True(t, f.CanProceed())
	require.NoError(t, f.Continue())
}

func TestSelectionsEnforceStepOrder(t *testing.T) {
	f := newTestFlow(t)

	var stepErr *StepError
	require.ErrorAs(t, f.SelectLocation(models.LocationOnline), &stepErr)
	require.ErrorAs(t, f.SelectSubject("math"), &stepErr)
	require.ErrorAs(t, f.TogglePartner("1"), &stepErr)
	require.ErrorAs(t, f.SelectDate("2024-01-16"), &stepErr)
	require.ErrorAs(t, f.SelectTime("10:00"), &stepErr)

	require.NoError(t, f.SelectSessionType(models.SessionIndividual))
	require.NoError(t, f.Continue())
	require.ErrorAs(t, f.SelectSessionType(models.SessionGroup), &stepErr)
}

func TestSelectSubjectRejectsUntaughtSubject(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionIndividual))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	require.NoError(t, f.Continue())

	var stepErr *StepError
	require.ErrorAs(t, f.SelectSubject("french"), &stepErr)
	require.NoError(t, f.SelectSubject("math"))
}

func TestTutorSubjectsKeepCatalogOrder(t *testing.T) {
	f := newTestFlow(t)
	offered := f.TutorSubjects()
	require.Len(t, offered, 2)
	assert.Equal(t, "math", offered[0].ID)
	assert.Equal(t, "physics", offered[1].ID)
}

func TestPartnerCandidatesMatchDraftedSubject(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionGroup))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectSubject("math"))

	candidates := f.PartnerCandidates()
	require.Len(t, candidates, 2)
	assert.Equal(t, "Youssef Ben Ali", candidates[0].Name)
	assert.Equal(t, "Fatma Trabelsi", candidates[1].Name)
}

func TestTogglePartnerAddsAndRemoves(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionGroup))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectSubject("math"))
	require.NoError(t, f.Continue())

	require.NoError(t, f.TogglePartner("1"))
	require.NoError(t, f.TogglePartner("2"))
	assert.Equal(t, []string{"1", "2"}, f.State().PartnerIDs)

	require.NoError(t, f.TogglePartner("1"))
	assert.Equal(t, []string{"2"}, f.State().PartnerIDs)

	// Khaled waits for physics, not the drafted math.
	var stepErr *StepError
	require.ErrorAs(t, f.TogglePartner("3"), &stepErr)
	require.ErrorAs(t, f.TogglePartner("missing"), &stepErr)
}

func TestSwitchToIndividualDiscardsPartners(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionGroup))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectSubject("math"))
	require.NoError(t, f.Continue())
	require.NoError(t, f.TogglePartner("1"))

	require.NoError(t, f.SwitchToIndividual())
	st := f.State()
	assert.Equal(t, models.SessionIndividual, st.SessionType)
	assert.Empty(t, st.PartnerIDs)
	assert.Equal(t, 4, st.TotalDisplaySteps)
	assert.True(t, f.CanProceed())
}

func TestDateTimeValidation(t *testing.T) {
	f := newTestFlow(t)
	advance(t, f, models.SessionIndividual)

	var stepErr *StepError
	require.ErrorAs(t, f.SelectDate("2024-02-15"), &stepErr)
	require.ErrorAs(t, f.SelectDate("not-a-date"), &stepErr)
	require.NoError(t, f.SelectDate("2024-01-21"))

	require.ErrorAs(t, f.SelectTime("12:00"), &stepErr)
	require.NoError(t, f.SelectTime("09:00"))
}

func TestConfirmIndividualSession(t *testing.T) {
	f := newTestFlow(t)
	advance(t, f, models.SessionIndividual)
	require.NoError(t, f.SelectDate("2024-01-16"))
	require.NoError(t, f.SelectTime("14:00"))

	repo := &memRepo{}
	session, note, err := f.Confirm(repo)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("session-%d", fixedNow.UnixMilli()), session.ID)
	assert.Equal(t, "Yassine Ben Ali", session.TeacherName)
	assert.Equal(t, "Mathematics", session.Subject)
	assert.Equal(t, "2024-01-16", session.Date)
	assert.Equal(t, "14:00", session.Time)
	assert.Equal(t, models.SessionIndividual, session.SessionType)
	assert.Equal(t, models.LocationOnline, session.LocationType)
	assert.Equal(t, models.SessionStatusScheduled, session.Status)
	assert.False(t, session.IsTeaching)
	assert.Empty(t, session.Partners)

	assert.Equal(t, "Individual session booked with Yassine Ben Ali!", note.Message)
	assert.Equal(t, "2024-01-16 at 14:00 • Online", note.Description)

	require.Len(t, repo.sessions, 1)
	assert.Equal(t, session, repo.sessions[0])

	// The draft resets for the next booking.
	assert.Equal(t, StepSessionType, f.Step())
	assert.False(t, f.CanProceed())
}

func TestConfirmGroupSessionResolvesPartnerNames(t *testing.T) {
	f := newTestFlow(t)
	advance(t, f, models.SessionGroup, "2", "1")
	require.NoError(t, f.SelectDate("2024-01-17"))
	require.NoError(t, f.SelectTime("10:00"))

	repo := &memRepo{}
	session, note, err := f.Confirm(repo)
	require.NoError(t, err)

	// Names come back in waiting-catalog order, not selection order.
	assert.Equal(t, []string{"Youssef Ben Ali", "Fatma Trabelsi"}, session.Partners)
	assert.Equal(t, models.SessionGroup, session.SessionType)
	assert.Equal(t, "Group session booked with Yassine Ben Ali!", note.Message)
}

func TestConfirmRejectsDuplicateSlot(t *testing.T) {
	repo := &memRepo{}

	f := newTestFlow(t)
	advance(t, f, models.SessionIndividual)
	require.NoError(t, f.SelectDate("2024-01-16"))
	require.NoError(t, f.SelectTime("14:00"))
	_, _, err := f.Confirm(repo)
	require.NoError(t, err)

	g := newTestFlow(t)
	advance(t, g, models.SessionIndividual)
	require.NoError(t, g.SelectDate("2024-01-16"))
	require.NoError(t, g.SelectTime("14:00"))
	_, _, err = g.Confirm(repo)
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.sessions, 1)

	// A different time on the same day is fine.
	require.NoError(t, g.SelectTime("15:00"))
	_, _, err = g.Confirm(repo)
	require.NoError(t, err)
	assert.Len(t, repo.sessions, 2)
}

func TestConfirmBeforeFinalStepFails(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionIndividual))

	repo := &memRepo{}
	var stepErr *StepError
	_, _, err := f.Confirm(repo)
	require.ErrorAs(t, err, &stepErr)
	assert.Empty(t, repo.sessions)
}

func TestConfirmAppendFailureKeepsDraft(t *testing.T) {
	f := newTestFlow(t)
	advance(t, f, models.SessionIndividual)
	require.NoError(t, f.SelectDate("2024-01-16"))
	require.NoError(t, f.SelectTime("14:00"))

	repo := &memRepo{appendErr: errors.New("disk full")}
	_, _, err := f.Confirm(repo)
	require.Error(t, err)

	// Still at the final step; the user can retry.
	assert.True(t, f.AtFinalStep())
	assert.True(t, f.CanProceed())
}

func TestBackWalksOneStep(t *testing.T) {
	f := newTestFlow(t)
	require.Error(t, f.Back())

	require.NoError(t, f.SelectSessionType(models.SessionGroup))
	require.NoError(t, f.Continue())
	require.NoError(t, f.Back())
	assert.Equal(t, StepSessionType, f.Step())
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	_, err := m.Get("u1")
	require.ErrorIs(t, err, ErrNoActiveFlow)

	f := newTestFlow(t)
	m.Start("u1", f)
	got, err := m.Get("u1")
	require.NoError(t, err)
	assert.Same(t, f, got)

	// Starting again replaces the abandoned draft.
	g := newTestFlow(t)
	m.Start("u1", g)
	got, err = m.Get("u1")
	require.NoError(t, err)
	assert.Same(t, g, got)

	m.Cancel("u1")
	_, err = m.Get("u1")
	require.ErrorIs(t, err, ErrNoActiveFlow)
}
