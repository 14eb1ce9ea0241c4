package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Stop is one scheduled point of interest within a day. Everything beyond
// slot and name is optional on the wire; coordinates are pointers so a null
// or missing value stays distinguishable from 0.
type Stop struct {
	Slot    string   `json:"slot"`
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	EtaMin  *int     `json:"eta_min,omitempty"`
	WalkMin *int     `json:"walk_min,omitempty"`
	Price   string   `json:"price,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Notes   string   `json:"notes,omitempty"`
	MapsURL string   `json:"maps_url,omitempty"`
}

// Plottable reports whether the stop carries both coordinates and can be
// placed on the map. Non-plottable stops still render in the itinerary.
func (s Stop) Plottable() bool {
	return s.Lat != nil && s.Lng != nil
}

// DayPlan pairs a day label with its ordered stops.
type DayPlan struct {
	Label string
	Stops []Stop
}

// Itinerary is the ordered day-label -> stops structure of a draft. The wire
// format is a JSON object; day order is the object's key order, so decoding
// goes through the token stream instead of a Go map.
type Itinerary []DayPlan

func (it *Itinerary) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*it = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("itinerary: expected JSON object, got %v", tok)
	}

	days := Itinerary{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("itinerary: non-string day label %v", keyTok)
		}

		var stops []Stop
		if err := dec.Decode(&stops); err != nil {
			return fmt.Errorf("itinerary day %q: %w", label, err)
		}
		days = append(days, DayPlan{Label: label, Stops: stops})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*it = days
	return nil
}

func (it Itinerary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range it {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(day.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')

		stops := day.Stops
		if stops == nil {
			stops = []Stop{}
		}
		encoded, err := json.Marshal(stops)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Draft is the itinerary payload of one plan. City and Days echo the request
// preferences back from the backend.
type Draft struct {
	City      string    `json:"city,omitempty"`
	Days      int       `json:"days,omitempty"`
	Itinerary Itinerary `json:"itinerary"`
}

// PlanID is the plan identifier. The backend issues letters ("A", "B"), but
// numeric ids from older payloads are accepted and stringified.
type PlanID string

func (id *PlanID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = PlanID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = PlanID(n.String())
		return nil
	}
	return fmt.Errorf("plan id: expected string or number, got %s", data)
}

// PlanSummary is the LLM-generated audience/highlight block.
type PlanSummary struct {
	ForWho     string   `json:"for_who,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Plan is one complete proposed itinerary alternative.
type Plan struct {
	ID        PlanID       `json:"id"`
	Narrative string       `json:"narrative,omitempty"`
	Summary   *PlanSummary `json:"summary,omitempty"`
	Draft     Draft        `json:"draft"`
}

// PlanResponse is the POST /plan payload. Narrative is the top-level
// fallback used when the first plan has none. The backend also echoes a
// compatibility "draft" field for old clients; it is ignored here.
type PlanResponse struct {
	Plans     []Plan `json:"plans"`
	Narrative string `json:"narrative,omitempty"`
}

// PlanRequest is the POST /plan body.
type PlanRequest struct {
	City        string   `json:"city"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	WithKids    bool     `json:"with_kids"`
	Budget      string   `json:"budget"`
	MaxWalkMin  int      `json:"max_walk_min"`
	TravelStyle string   `json:"travel_style"`
	NumPlans    int      `json:"num_plans"`
	WithSummary bool     `json:"with_summary"`
}

// Normalized clamps NumPlans to the backend's 1..3 range and forces the
// summary flag on, matching what the backend would do anyway.
func (r PlanRequest) Normalized() PlanRequest {
	if r.NumPlans < 1 {
		r.NumPlans = 1
	}
	if r.NumPlans > 3 {
		r.NumPlans = 3
	}
	r.WithSummary = true
	return r
}

// MapPoint is a plottable stop, derived from the active draft and never
// stored; it is recomputed on every selection.
type MapPoint struct {
	Lat  float64
	Lng  float64
	Name string
	Slot string
}

// RequestState is the plan-request lifecycle state.
type RequestState int

const (
	StateIdle RequestState = iota
	StateLoading
	StateSuccess
	StateFailure
)

func (s RequestState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}
