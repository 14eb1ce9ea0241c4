package projection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/travelbot-console/internal/types"
)

func draftFromJSON(t *testing.T, payload string) *types.Draft {
	t.Helper()
	var draft types.Draft
	require.NoError(t, json.Unmarshal([]byte(payload), &draft))
	return &draft
}

func TestProjectPreservesDayAndStopOrder(t *testing.T) {
	draft := draftFromJSON(t, `{"itinerary": {
		"Day 2": [
			{"slot": "Morning", "name": "Umeda Sky Building"},
			{"slot": "Night", "name": "Dotonbori"}
		],
		"Day 1": [
			{"slot": "Lunch", "name": "Kuromon Market"}
		]
	}}`)

	days := Project(draft)

	require.Len(t, days, 2)
	assert.Equal(t, "Day 2", days[0].Label)
	assert.Equal(t, "Day 1", days[1].Label)
	assert.Equal(t, "Umeda Sky Building", days[0].Stops[0].Name)
	assert.Equal(t, "Dotonbori", days[0].Stops[1].Name)
}

func TestProjectDoesNotMutateOrShareDraft(t *testing.T) {
	draft := draftFromJSON(t, `{"itinerary": {"Day 1": [{"slot": "Morning", "name": "Osaka Castle"}]}}`)

	days := Project(draft)
	days[0].Stops[0].Name = "changed"

	assert.Equal(t, "Osaka Castle", draft.Itinerary[0].Stops[0].Name)
}

func TestProjectDoesNotFilterStops(t *testing.T) {
	// Stops without coordinates or metadata still project; placeholders are
	// the renderer's job.
	draft := draftFromJSON(t, `{"itinerary": {"Day 1": [{"slot": "Morning", "name": "Hozenji Yokocho"}]}}`)

	days := Project(draft)

	require.Len(t, days, 1)
	require.Len(t, days[0].Stops, 1)
	assert.Nil(t, days[0].Stops[0].EtaMin)
	assert.Empty(t, days[0].Stops[0].Tags)
}

func TestProjectEmptyInputs(t *testing.T) {
	assert.Empty(t, Project(nil))
	assert.Empty(t, Project(&types.Draft{}))
	assert.Empty(t, Project(draftFromJSON(t, `{"itinerary": {}}`)))
}

func TestExtractPointsKeepsOnlyCoordinatePairs(t *testing.T) {
	draft := draftFromJSON(t, `{"itinerary": {
		"Day 1": [
			{"slot": "Morning", "name": "Osaka Castle", "lat": 34.6873, "lng": 135.5262},
			{"slot": "Lunch", "name": "Kuromon Market", "lat": 34.6659},
			{"slot": "Afternoon", "name": "Hozenji Yokocho"}
		],
		"Day 2": [
			{"slot": "Night", "name": "Dotonbori", "lat": 34.6687, "lng": 135.5013}
		]
	}}`)

	points := ExtractPoints(draft)

	require.Len(t, points, 2)
	assert.Equal(t, types.MapPoint{Lat: 34.6873, Lng: 135.5262, Name: "Osaka Castle", Slot: "Morning"}, points[0])
	assert.Equal(t, types.MapPoint{Lat: 34.6687, Lng: 135.5013, Name: "Dotonbori", Slot: "Night"}, points[1])
}

func TestExtractPointsEmptyInputs(t *testing.T) {
	assert.Empty(t, ExtractPoints(nil))
	assert.Empty(t, ExtractPoints(&types.Draft{}))
}
