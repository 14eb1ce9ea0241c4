package gallery

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/travelbot-console/internal/domain/projection"
	"github.com/FACorreiaa/travelbot-console/internal/types"
)

// PointSink applies a plan's plottable points to the map.
type PointSink interface {
	SyncPoints(ctx context.Context, points []types.MapPoint)
}

// RenderedPlan is one plan ready for the view layer: the raw plan, its
// projected days, the extracted map points, and per-stop interest-match
// flags parallel to Days.
type RenderedPlan struct {
	Plan       types.Plan
	Days       []types.DayPlan
	Points     []types.MapPoint
	Highlights [][]bool
}

type Service interface {
	Compose(ctx context.Context, resp *types.PlanResponse, interests []string) ([]RenderedPlan, error)
	Select(ctx context.Context, index int) error
	Narrative(resp *types.PlanResponse) string
}

// ServiceImpl composes plan alternatives and decides which plan's points
// drive the map. Only one plan's points are ever shown; the most recent
// selection wins.
type ServiceImpl struct {
	logger *slog.Logger
	sink   PointSink

	mu       sync.Mutex
	composed []RenderedPlan
}

func NewPlanGallery(sink PointSink, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		sink:   sink,
	}
}

// Compose projects every plan in response order and immediately targets the
// map at the first plan's points. Responses without any plan are a data
// error, not a transport one.
func (s *ServiceImpl) Compose(ctx context.Context, resp *types.PlanResponse, interests []string) ([]RenderedPlan, error) {
	ctx, span := otel.Tracer("PlanGallery").Start(ctx, "Compose")
	defer span.End()

	if resp == nil || len(resp.Plans) == 0 {
		err := &types.DataError{Reason: types.ErrNoItinerary}
		span.RecordError(err)
		span.SetStatus(codes.Error, "response without plans")
		return nil, err
	}

	matcher := newInterestMatcher(interests)

	rendered := make([]RenderedPlan, 0, len(resp.Plans))
	for _, plan := range resp.Plans {
		draft := plan.Draft
		days := projection.Project(&draft)
		rendered = append(rendered, RenderedPlan{
			Plan:       plan,
			Days:       days,
			Points:     projection.ExtractPoints(&draft),
			Highlights: matcher.MarkStops(days),
		})
	}

	s.mu.Lock()
	s.composed = rendered
	s.mu.Unlock()

	// Default map target is the first plan. An empty point set still goes
	// through the sink so stale markers get cleared and the signal fires.
	s.sink.SyncPoints(ctx, rendered[0].Points)

	span.SetAttributes(attribute.Int("plans.count", len(rendered)))
	span.SetStatus(codes.Ok, "plans composed")
	s.logger.InfoContext(ctx, "plan gallery composed", slog.Int("plans", len(rendered)))
	return rendered, nil
}

// Select re-targets the map at the plan with the given index.
func (s *ServiceImpl) Select(ctx context.Context, index int) error {
	ctx, span := otel.Tracer("PlanGallery").Start(ctx, "Select")
	defer span.End()
	span.SetAttributes(attribute.Int("plan.index", index))

	s.mu.Lock()
	if index < 0 || index >= len(s.composed) {
		s.mu.Unlock()
		span.SetStatus(codes.Error, "plan index out of range")
		return types.ErrNotFound
	}
	points := s.composed[index].Points
	id := s.composed[index].Plan.ID
	s.mu.Unlock()

	s.sink.SyncPoints(ctx, points)
	s.logger.InfoContext(ctx, "plan selected", slog.String("plan_id", string(id)), slog.Int("index", index))
	return nil
}

// Narrative resolves the displayed narrative: the first plan's own text when
// present, else the response's top-level fallback, else nothing.
func (s *ServiceImpl) Narrative(resp *types.PlanResponse) string {
	if resp == nil {
		return ""
	}
	if len(resp.Plans) > 0 && resp.Plans[0].Narrative != "" {
		return resp.Plans[0].Narrative
	}
	return resp.Narrative
}
