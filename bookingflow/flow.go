package bookingflow

import (
	"fmt"
	"time"

	"github.com/seifeddine26/peer_learn/models"
	"github.com/seifeddine26/peer_learn/utils"
)

// Draft is the in-progress state of one wizard invocation. It is owned
// exclusively by its Flow, discarded on cancel and reset on commit, and
// never partially persisted.
type Draft struct {
	Details   SessionDetails
	Location  models.LocationType
	SubjectID string
	Date      string
	Time      string
}

// Notification is the toast surfaced after a successful commit.
type Notification struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

// Flow drives one booking wizard for one tutor. All transitions are
// synchronous; the only side effect is the single append performed by
// Confirm.
type Flow struct {
	tutor    models.Tutor
	subjects []models.Subject
	waiting  []models.WaitingLearner
	step     int
	draft    Draft
	now      func() time.Time
}

func NewFlow(tutor models.Tutor, subjects []models.Subject, waiting []models.WaitingLearner) *Flow {
	return &Flow{
		tutor:    tutor,
		subjects: subjects,
		waiting:  waiting,
		step:     StepSessionType,
		now:      time.Now,
	}
}

func (f *Flow) Step() int { return f.step }

func (f *Flow) Draft() Draft { return f.draft }

func (f *Flow) kind() models.SessionType {
	if f.draft.Details == nil {
		return ""
	}
	return f.draft.Details.Kind()
}

// TutorSubjects is the subject list offered at the subject step: the
// catalog entries the tutor actually teaches, in catalog order.
func (f *Flow) TutorSubjects() []models.Subject {
	offered := make([]models.Subject, 0, len(f.tutor.Subjects))
	for _, s := range f.subjects {
		if f.tutor.TeachesSubject(s.ID) {
			offered = append(offered, s)
		}
	}
	return offered
}

// matchingLearners is the waiting pool narrowed to subjects the tutor
// teaches. The per-subject narrowing happens in PartnerCandidates.
func (f *Flow) matchingLearners() []models.WaitingLearner {
	pool := make([]models.WaitingLearner, 0, len(f.waiting))
	for _, l := range f.waiting {
		if f.tutor.TeachesSubject(l.SubjectID) {
			pool = append(pool, l)
		}
	}
	return pool
}

// PartnerCandidates returns the waiting learners offered at the
// partners step: those waiting for the drafted subject.
func (f *Flow) PartnerCandidates() []models.WaitingLearner {
	candidates := make([]models.WaitingLearner, 0)
	for _, l := range f.matchingLearners() {
		if l.SubjectID == f.draft.SubjectID {
			candidates = append(candidates, l)
		}
	}
	return candidates
}

func (f *Flow) SelectSessionType(kind models.SessionType) error {
	if f.step != StepSessionType {
		return stepErr(f.step, "session type is chosen at the first step")
	}
	switch kind {
	case models.SessionIndividual:
		f.draft.Details = IndividualDetails{}
	case models.SessionGroup:
		f.draft.Details = GroupDetails{}
	default:
		return stepErr(f.step, "session type must be individual or group")
	}
	return nil
}

func (f *Flow) SelectLocation(location models.LocationType) error {
	if f.step != StepLocation {
		return stepErr(f.step, "location is chosen at the second step")
	}
	if location != models.LocationOnline && location != models.LocationInPerson {
		return stepErr(f.step, "location must be online or in-person")
	}
	f.draft.Location = location
	return nil
}

func (f *Flow) SelectSubject(subjectID string) error {
	if f.step != StepSubject {
		return stepErr(f.step, "subject is chosen at the third step")
	}
	if !f.tutor.TeachesSubject(subjectID) {
		return stepErr(f.step, fmt.Sprintf("%s does not teach this subject", f.tutor.Name))
	}
	f.draft.SubjectID = subjectID
	return nil
}

func (f *Flow) TogglePartner(learnerID string) error {
	if f.step != StepPartners {
		return stepErr(f.step, "study partners are chosen at the partners step")
	}
	group, ok := f.draft.Details.(GroupDetails)
	if !ok {
		return stepErr(f.step, "individual sessions have no study partners")
	}
	found := false
	for _, l := range f.PartnerCandidates() {
		if l.ID == learnerID {
			found = true
			break
		}
	}
	if !found {
		return stepErr(f.step, "this learner is not waiting for the chosen subject")
	}
	for i, id := range group.PartnerIDs {
		if id == learnerID {
			group.PartnerIDs = append(group.PartnerIDs[:i], group.PartnerIDs[i+1:]...)
			f.draft.Details = group
			return nil
		}
	}
	group.PartnerIDs = append(group.PartnerIDs, learnerID)
	f.draft.Details = group
	return nil
}

// SwitchToIndividual is the one-click downgrade offered when no
// candidates are waiting. The partners guard then holds trivially and
// the displayed step count shrinks by one.
func (f *Flow) SwitchToIndividual() error {
	if f.draft.Details == nil {
		return stepErr(f.step, "choose a session type first")
	}
	f.draft.Details = IndividualDetails{}
	return nil
}

func (f *Flow) SelectDate(date string) error {
	if f.step != StepDateTime {
		return stepErr(f.step, "the date is chosen at the final step")
	}
	if !isBookableDate(f.now(), date) {
		return stepErr(f.step, "date must fall within the next 7 days")
	}
	f.draft.Date = date
	return nil
}

func (f *Flow) SelectTime(t string) error {
	if f.step != StepDateTime {
		return stepErr(f.step, "the time is chosen at the final step")
	}
	if !isBookableTime(t) {
		return stepErr(f.step, "time must be one of the offered slots")
	}
	f.draft.Time = t
	return nil
}

// CanProceed is the guard table: whether the current step's required
// fields are set.
func (f *Flow) CanProceed() bool {
	switch f.step {
	case StepSessionType:
		return f.draft.Details != nil
	case StepLocation:
		return f.draft.Location != ""
	case StepSubject:
		return f.draft.SubjectID != ""
	case StepPartners:
		group, ok := f.draft.Details.(GroupDetails)
		if !ok {
			return true
		}
		return len(group.PartnerIDs) > 0
	case StepDateTime:
		return f.draft.Date != "" && f.draft.Time != ""
	}
	return false
}

func (f *Flow) AtFinalStep() bool {
	return f.step == StepDateTime
}

func (f *Flow) Continue() error {
	if f.AtFinalStep() {
		return stepErr(f.step, "already at the final step, confirm the booking instead")
	}
	if !f.CanProceed() {
		return stepErr(f.step, "complete this step before continuing")
	}
	f.step++
	return nil
}

func (f *Flow) Back() error {
	if f.step == StepSessionType {
		return stepErr(f.step, "already at the first step")
	}
	f.step--
	return nil
}

// Confirm turns a valid draft into a persisted session: resolves the
// subject and partner display names, rejects a duplicate slot for the
// same tutor, appends exactly one record and resets the draft. No
// further validation happens here beyond the per-step guards.
func (f *Flow) Confirm(repo SessionRepository) (models.BookedSession, Notification, error) {
	if !f.AtFinalStep() {
		return models.BookedSession{}, Notification{}, stepErr(f.step, "finish every step before confirming")
	}
	if !f.CanProceed() {
		return models.BookedSession{}, Notification{}, stepErr(f.step, "choose a date and time before confirming")
	}

	existing, err := repo.ReadAll()
	if err != nil {
		return models.BookedSession{}, Notification{}, err
	}
	for _, s := range existing {
		if s.TeacherName == f.tutor.Name && s.Date == f.draft.Date && s.Time == f.draft.Time {
			return models.BookedSession{}, Notification{}, ErrSlotTaken
		}
	}

	partners := []string{}
	if group, ok := f.draft.Details.(GroupDetails); ok {
		for _, l := range f.waiting {
			for _, id := range group.PartnerIDs {
				if l.ID == id {
					partners = append(partners, l.Name)
				}
			}
		}
	}

	session := models.BookedSession{
		ID:           utils.NewSessionID(f.now()),
		TeacherName:  f.tutor.Name,
		Subject:      models.SubjectNameByID(f.subjects, f.draft.SubjectID),
		Date:         f.draft.Date,
		Time:         f.draft.Time,
		SessionType:  f.kind(),
		LocationType: f.draft.Location,
		Status:       models.SessionStatusScheduled,
		IsTeaching:   false,
		Partners:     partners,
	}
	if err := repo.Append(session); err != nil {
		return models.BookedSession{}, Notification{}, err
	}

	note := Notification{
		Message:     fmt.Sprintf("Individual session booked with %s!", f.tutor.Name),
		Description: fmt.Sprintf("%s at %s • %s", session.Date, session.Time, locationLabel(session.LocationType)),
	}
	if session.SessionType == models.SessionGroup {
		note.Message = fmt.Sprintf("Group session booked with %s!", f.tutor.Name)
	}

	f.reset()
	return session, note, nil
}

func locationLabel(l models.LocationType) string {
	if l == models.LocationOnline {
		return "Online"
	}
	return "In-person"
}

func (f *Flow) reset() {
	f.step = StepSessionType
	f.draft = Draft{}
}

// State is the snapshot handlers serialize for the client.
type State struct {
	TutorID           string                `json:"tutor_id"`
	TutorName         string                `json:"tutor_name"`
	Step              int                   `json:"step"`
	DisplayStep       int                   `json:"display_step"`
	TotalDisplaySteps int                   `json:"total_display_steps"`
	SessionType       models.SessionType    `json:"session_type,omitempty"`
	Location          models.LocationType   `json:"location_type,omitempty"`
	SubjectID         string                `json:"subject_id,omitempty"`
	PartnerIDs        []string              `json:"partner_ids,omitempty"`
	Date              string                `json:"date,omitempty"`
	Time              string                `json:"time,omitempty"`
	CanProceed        bool                  `json:"can_proceed"`
	AtFinalStep       bool                  `json:"at_final_step"`
}

func (f *Flow) State() State {
	kind := f.kind()
	st := State{
		TutorID:           f.tutor.ID,
		TutorName:         f.tutor.Name,
		Step:              f.step,
		DisplayStep:       LogicalToDisplay(f.step, kind),
		TotalDisplaySteps: TotalDisplaySteps(kind),
		SessionType:       kind,
		Location:          f.draft.Location,
		SubjectID:         f.draft.SubjectID,
		Date:              f.draft.Date,
		Time:              f.draft.Time,
		CanProceed:        f.CanProceed(),
		AtFinalStep:       f.AtFinalStep(),
	}
	if group, ok := f.draft.Details.(GroupDetails); ok {
		st.PartnerIDs = group.PartnerIDs
	}
	return st
}
