package bookingflow

import "github.com/seifeddine26/peer_learn/models"

// Logical wizard steps. The partners step only exists for group
// sessions; individual flows still pass through it internally but it
// is hidden from the displayed progression.
const (
	StepSessionType = 1
	StepLocation    = 2
	StepSubject     = 3
	StepPartners    = 4
	StepDateTime    = 5
)

// SessionDetails is the tagged variant over individual and group
// drafts. Partner selections only exist on the group variant, so
// switching kinds structurally discards them.
type SessionDetails interface {
	Kind() models.SessionType
}

type IndividualDetails struct{}

func (IndividualDetails) Kind() models.SessionType { return models.SessionIndividual }

type GroupDetails struct {
	PartnerIDs []string
}

func (GroupDetails) Kind() models.SessionType { return models.SessionGroup }

// TotalDisplaySteps is the number of steps the user sees: group flows
// show all five, individual flows hide the partners step.
func TotalDisplaySteps(kind models.SessionType) int {
	if kind == models.SessionGroup {
		return 5
	}
	return 4
}

// LogicalToDisplay maps the internal step counter to the step number
// shown in progress indicators. Once an individual flow is past the
// subject step the displayed number lags the logical one by exactly
// one, because the partners step is skipped from view only.
func LogicalToDisplay(step int, kind models.SessionType) int {
	if kind == models.SessionIndividual && step > StepSubject {
		return step - 1
	}
	return step
}
