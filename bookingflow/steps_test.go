package bookingflow

import (
	"testing"
	"time"

	"github.com/seifeddine26/peer_learn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalDisplaySteps(t *testing.T) {
	assert.Equal(t, 5, TotalDisplaySteps(models.SessionGroup))
	assert.Equal(t, 4, TotalDisplaySteps(models.SessionIndividual))
	assert.Equal(t, 4, TotalDisplaySteps(""))
}

func TestLogicalToDisplay(t *testing.T) {
	tests := []struct {
		step int
		kind models.SessionType
		want int
	}{
		{StepSessionType, models.SessionIndividual, 1},
		{StepLocation, models.SessionIndividual, 2},
		{StepSubject, models.SessionIndividual, 3},
		{StepPartners, models.SessionIndividual, 3},
		{StepDateTime, models.SessionIndividual, 4},
		{StepSessionType, models.SessionGroup, 1},
		{StepPartners, models.SessionGroup, 4},
		{StepDateTime, models.SessionGroup, 5},
		{StepDateTime, "", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LogicalToDisplay(tt.step, tt.kind),
			"step %d kind %q", tt.step, tt.kind)
	}
}

// An individual run shows the user 1,2,3,4 even though five logical
// steps pass underneath.
func TestIndividualFlowDisplaySequence(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.SelectSessionType(models.SessionIndividual))

	seen := []int{f.State().DisplayStep}
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectLocation(models.LocationOnline))
	seen = append(seen, f.State().DisplayStep)
	require.NoError(t, f.Continue())
	require.NoError(t, f.SelectSubject("math"))
	seen = append(seen, f.State().DisplayStep)
	require.NoError(t, f.Continue())
	require.NoError(t, f.Continue())
	seen = append(seen, f.State().DisplayStep)

	assert.Equal(t, []int{1, 2, 3, 4}, seen)
	assert.Equal(t, 4, f.State().TotalDisplaySteps)
}

func TestAvailableDatesWindow(t *testing.T) {
	now := time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC)
	dates := AvailableDates(now)
	require.Len(t, dates, 7)
	assert.Equal(t, "2024-01-15", dates[0].Date)
	assert.Equal(t, "2024-01-21", dates[6].Date)
	assert.Equal(t, "Mon", dates[0].Day)
	assert.Equal(t, 15, dates[0].Num)
	assert.Equal(t, "Jan", dates[0].Month)
}

func TestAvailableDatesCrossMonthBoundary(t *testing.T) {
	now := time.Date(2024, 1, 29, 8, 0, 0, 0, time.UTC)
	dates := AvailableDates(now)
	require.Len(t, dates, 7)
	assert.Equal(t, "2024-02-04", dates[6].Date)
	assert.Equal(t, "Feb", dates[6].Month)
}
