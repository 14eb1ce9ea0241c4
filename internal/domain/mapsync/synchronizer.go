package mapsync

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/FACorreiaa/travelbot-console/internal/types"
	"github.com/FACorreiaa/travelbot-console/pkg/observability"
)

// DefaultZoom is the fixed zoom level applied on every sync.
const DefaultZoom = 13

// Synchronizer owns the lifetime of the single map widget and its markers.
// The widget is created on the first plottable update and then reused for
// the rest of the session; markers are replaced wholesale on every sync
// rather than diffed.
type Synchronizer struct {
	logger   *slog.Logger
	provider Provider
	signals  SignalSink
	zoom     int

	mu          sync.Mutex
	widget      Widget
	markers     []Marker
	initialized bool
}

// NewSynchronizer builds a synchronizer. A nil provider is legal: every sync
// then reports the capability as unavailable instead of failing.
func NewSynchronizer(provider Provider, signals SignalSink, zoom int, logger *slog.Logger) *Synchronizer {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &Synchronizer{
		logger:   logger,
		provider: provider,
		signals:  signals,
		zoom:     zoom,
	}
}

// SyncPoints applies the given points to the map. After a successful call
// the marker list matches the point list one to one, in order. All failure
// modes are signaled and recoverable on the next call.
func (s *Synchronizer) SyncPoints(ctx context.Context, points []types.MapPoint) {
	_, span := otel.Tracer("MapSynchronizer").Start(ctx, "SyncPoints")
	defer span.End()
	span.SetAttributes(attribute.Int("points.count", len(points)))

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(points) == 0 {
		// An empty update always yields zero markers, even on a live widget.
		s.destroyMarkersLocked()
		s.signals.NoPlottableCoordinates()
		observability.RecordMapSync("no_coordinates")
		s.logger.InfoContext(ctx, "map sync skipped, no plottable coordinates")
		return
	}

	if s.provider == nil {
		s.signals.MappingProviderUnavailable()
		observability.RecordMapSync("provider_unavailable")
		s.logger.WarnContext(ctx, "mapping provider unavailable, map not constructed")
		return
	}

	center := LatLng{Lat: points[0].Lat, Lng: points[0].Lng}
	if !s.initialized {
		widget, err := s.provider.CreateInstance(center, s.zoom)
		if err != nil {
			s.signals.MappingProviderUnavailable()
			observability.RecordMapSync("provider_unavailable")
			s.logger.ErrorContext(ctx, "map widget creation failed", slog.Any("error", err))
			return
		}
		s.widget = widget
		s.initialized = true
		s.logger.InfoContext(ctx, "map widget created",
			slog.Float64("center_lat", center.Lat),
			slog.Float64("center_lng", center.Lng),
			slog.Int("zoom", s.zoom))
	} else {
		s.widget.SetCenter(center)
		s.widget.SetZoom(s.zoom)
	}

	s.destroyMarkersLocked()
	for _, point := range points {
		marker, err := s.widget.CreateMarker(
			LatLng{Lat: point.Lat, Lng: point.Lng},
			point.Slot+" · "+point.Name,
		)
		if err != nil {
			s.logger.ErrorContext(ctx, "marker creation failed",
				slog.String("name", point.Name), slog.Any("error", err))
			continue
		}
		s.markers = append(s.markers, marker)
	}

	observability.RecordMapSync("synced")
	s.logger.InfoContext(ctx, "map synced", slog.Int("markers", len(s.markers)))
}

// Ready reports whether the widget has been created.
func (s *Synchronizer) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// MarkerCount returns the number of live markers.
func (s *Synchronizer) MarkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.markers)
}

func (s *Synchronizer) destroyMarkersLocked() {
	for _, marker := range s.markers {
		marker.Destroy()
	}
	s.markers = nil
}
