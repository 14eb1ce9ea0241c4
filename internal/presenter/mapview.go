package presenter

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/FACorreiaa/travelbot-console/internal/domain/mapsync"
)

// ConsoleMapProvider is the terminal rendition of the mapping capability:
// one "widget" per session, markers rendered as pin lines with a Google
// Maps link (same link format the backend puts in maps_url).
type ConsoleMapProvider struct {
	out io.Writer
}

func NewConsoleMapProvider(out io.Writer) *ConsoleMapProvider {
	return &ConsoleMapProvider{out: out}
}

func (p *ConsoleMapProvider) CreateInstance(center mapsync.LatLng, zoom int) (mapsync.Widget, error) {
	headerColor.Fprintf(p.out, "Map view · centered %.4f, %.4f (zoom %d)\n", center.Lat, center.Lng, zoom)
	return &consoleWidget{out: p.out}, nil
}

type consoleWidget struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *consoleWidget) SetCenter(center mapsync.LatLng) {
	w.mu.Lock()
	defer w.mu.Unlock()
	faintColor.Fprintf(w.out, "Map re-centered %.4f, %.4f\n", center.Lat, center.Lng)
}

func (w *consoleWidget) SetZoom(int) {
	// Zoom is fixed for the session; nothing to render.
}

func (w *consoleWidget) CreateMarker(position mapsync.LatLng, label string) (mapsync.Marker, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	color.New(color.FgRed).Fprint(w.out, "  ⚲ ")
	fmt.Fprintf(w.out, "%s — https://www.google.com/maps/search/?api=1&query=%.6f%%2C%.6f\n",
		label, position.Lat, position.Lng)
	return consoleMarker{}, nil
}

type consoleMarker struct{}

// Destroy is a no-op: printed pins cannot be withdrawn, the next sync simply
// renders the replacement set.
func (consoleMarker) Destroy() {}
