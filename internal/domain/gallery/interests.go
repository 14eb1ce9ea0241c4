package gallery

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"

	"github.com/FACorreiaa/travelbot-console/internal/types"
)

// interestMatcher flags stops relevant to the user's interests by scanning
// name, tags and notes with a single Aho-Corasick pass per stop.
type interestMatcher struct {
	matcher *a.AhoCorasick
}

func newInterestMatcher(interests []string) *interestMatcher {
	patterns := make([]string, 0, len(interests))
	for _, interest := range interests {
		if trimmed := strings.TrimSpace(interest); trimmed != "" {
			patterns = append(patterns, strings.ToLower(trimmed))
		}
	}
	if len(patterns) == 0 {
		return &interestMatcher{}
	}

	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
	})
	matcher := builder.Build(patterns)
	return &interestMatcher{matcher: &matcher}
}

// MarkStops returns per-stop match flags parallel to the projected days.
func (m *interestMatcher) MarkStops(days []types.DayPlan) [][]bool {
	flags := make([][]bool, len(days))
	for i, day := range days {
		flags[i] = make([]bool, len(day.Stops))
		for j, stop := range day.Stops {
			flags[i][j] = m.matches(stop)
		}
	}
	return flags
}

func (m *interestMatcher) matches(stop types.Stop) bool {
	if m.matcher == nil {
		return false
	}
	haystack := strings.ToLower(stop.Name + " " + strings.Join(stop.Tags, " ") + " " + stop.Notes)
	iter := m.matcher.Iter(haystack)
	return iter.Next() != nil
}
