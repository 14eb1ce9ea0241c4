// Package projection turns the nested itinerary of a draft into flat,
// render-ready sequences. Everything here is pure: no state, no mutation of
// the input, so the view layer can be tested without a view.
package projection

import "github.com/FACorreiaa/travelbot-console/internal/types"

// Project returns the draft's days in their order of first appearance, each
// with its stops in received order. Stops are not filtered or validated;
// placeholder text for absent fields is the renderer's job. A nil draft or
// absent itinerary projects to an empty result.
func Project(draft *types.Draft) []types.DayPlan {
	if draft == nil || len(draft.Itinerary) == 0 {
		return []types.DayPlan{}
	}

	days := make([]types.DayPlan, 0, len(draft.Itinerary))
	for _, day := range draft.Itinerary {
		stops := make([]types.Stop, len(day.Stops))
		copy(stops, day.Stops)
		days = append(days, types.DayPlan{Label: day.Label, Stops: stops})
	}
	return days
}

// ExtractPoints flattens all stops across all days in day-then-stop order,
// keeping only those carrying both coordinates.
func ExtractPoints(draft *types.Draft) []types.MapPoint {
	if draft == nil || len(draft.Itinerary) == 0 {
		return []types.MapPoint{}
	}

	points := []types.MapPoint{}
	for _, day := range draft.Itinerary {
		for _, stop := range day.Stops {
			if !stop.Plottable() {
				continue
			}
			points = append(points, types.MapPoint{
				Lat:  *stop.Lat,
				Lng:  *stop.Lng,
				Name: stop.Name,
				Slot: stop.Slot,
			})
		}
	}
	return points
}
