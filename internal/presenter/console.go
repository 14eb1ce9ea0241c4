// Package presenter holds the view side of the client: the console
// implementation of the presentation signals the core emits, and a console
// mapping provider. The core never imports this package; it talks to small
// interfaces that Console happens to satisfy.
package presenter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/FACorreiaa/travelbot-console/internal/domain/gallery"
	"github.com/FACorreiaa/travelbot-console/internal/types"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	faintColor   = color.New(color.Faint)
	starColor    = color.New(color.FgMagenta, color.Bold)
)

// Console renders every presentation signal to a writer.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	loading bool
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) ShowLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	faintColor.Fprintln(c.out, "Planning your trip...")
}

func (c *Console) ClearLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
}

func (c *Console) ClearResults() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out)
}

func (c *Console) ShowFailure(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	errorColor.Fprintf(c.out, "✗ %s\n", message)
}

func (c *Console) ShowPlaceholder(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	warnColor.Fprintf(c.out, "— %s\n", message)
}

func (c *Console) ShowNarrative(text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	headerColor.Fprintln(c.out, "About this trip")
	fmt.Fprintln(c.out, text)
	fmt.Fprintln(c.out)
}

// ShowPlans renders every alternative with its day-by-day itinerary.
// Absent eta/walk/price render as "-", absent tags as nothing, per the
// placeholder policy. Interest-matched stops get a star.
func (c *Console) ShowPlans(plans []gallery.RenderedPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, plan := range plans {
		headerColor.Fprintf(c.out, "Plan %s\n", plan.Plan.ID)

		if summary := plan.Plan.Summary; summary != nil {
			if summary.ForWho != "" {
				faintColor.Fprintf(c.out, "  %s\n", summary.ForWho)
			}
			for _, highlight := range summary.Highlights {
				successColor.Fprintf(c.out, "  + %s\n", highlight)
			}
			for _, warning := range summary.Warnings {
				warnColor.Fprintf(c.out, "  ! %s\n", warning)
			}
		}

		for i, day := range plan.Days {
			fmt.Fprintf(c.out, "  %s\n", day.Label)
			if len(day.Stops) == 0 {
				faintColor.Fprintln(c.out, "    (free day)")
				continue
			}
			for j, stop := range day.Stops {
				marker := " "
				if len(plan.Highlights) > i && len(plan.Highlights[i]) > j && plan.Highlights[i][j] {
					marker = starColor.Sprint("★")
				}
				fmt.Fprintf(c.out, "    %s %-9s %s\n", marker, stop.Slot, stop.Name)
				faintColor.Fprintf(c.out, "        stay %s min · walk %s min · %s%s\n",
					minutesOrDash(stop.EtaMin),
					minutesOrDash(stop.WalkMin),
					textOrDash(stop.Price),
					tagsSuffix(stop.Tags),
				)
				if stop.Notes != "" {
					faintColor.Fprintf(c.out, "        %s\n", stop.Notes)
				}
				if stop.MapsURL != "" {
					faintColor.Fprintf(c.out, "        %s\n", stop.MapsURL)
				}
			}
		}
		fmt.Fprintln(c.out)
	}
}

func (c *Console) NoPlottableCoordinates() {
	c.mu.Lock()
	defer c.mu.Unlock()
	warnColor.Fprintln(c.out, "— No plottable coordinates in this plan; map not updated.")
}

func (c *Console) MappingProviderUnavailable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	warnColor.Fprintln(c.out, "— Mapping provider unavailable; itinerary shown without a map.")
}

// ShowBackendStatus renders the health-check result. An unreachable backend
// is degraded, not fatal.
func (c *Console) ShowBackendStatus(status types.HealthStatus, confirmed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !confirmed {
		warnColor.Fprintln(c.out, "Backend unconfirmed; results may be unavailable.")
		return
	}
	successColor.Fprintf(c.out, "Backend ok (llm: %v, maps: %v)\n", status.LLM, status.Maps)
}

// ShowCities renders the supported city list with resolved image URLs.
func (c *Console) ShowCities(cities []types.City, imageURL func(types.City) string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(cities) == 0 {
		warnColor.Fprintln(c.out, "— No cities available.")
		return
	}
	for _, city := range cities {
		headerColor.Fprintf(c.out, "%s", city.Label)
		faintColor.Fprintf(c.out, " (%s)\n", city.Code)
		if city.Description != "" {
			fmt.Fprintf(c.out, "  %s\n", city.Description)
		}
		if imageURL != nil {
			if resolved := imageURL(city); resolved != "" {
				faintColor.Fprintf(c.out, "  %s\n", resolved)
			}
		}
	}
}

func minutesOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func textOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func tagsSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " · " + strings.Join(tags, ", ")
}
