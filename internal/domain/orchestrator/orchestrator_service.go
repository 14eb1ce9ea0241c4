package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/travelbot-console/internal/domain/gallery"
	"github.com/FACorreiaa/travelbot-console/internal/types"
	"github.com/FACorreiaa/travelbot-console/pkg/observability"
)

// PlanService is the network transport for plan submissions.
type PlanService interface {
	SubmitPlan(ctx context.Context, req types.PlanRequest) (*types.PlanResponse, error)
}

// Composer is the plan gallery surface the orchestrator drives on success.
type Composer interface {
	Compose(ctx context.Context, resp *types.PlanResponse, interests []string) ([]gallery.RenderedPlan, error)
	Narrative(resp *types.PlanResponse) string
}

// Presenter receives the request-lifecycle presentation signals.
type Presenter interface {
	ShowLoading()
	ClearLoading()
	ClearResults()
	ShowFailure(message string)
	ShowPlaceholder(message string)
	ShowNarrative(text string)
	ShowPlans(plans []gallery.RenderedPlan)
}

type Service interface {
	Submit(ctx context.Context, req types.PlanRequest) error
	State() types.RequestState
}

// ServiceImpl drives the full request lifecycle:
// Idle -> Loading -> (Success | Failure). A new submission re-enters Loading
// from any state. There is no queuing or cancellation: overlapping
// submissions proceed independently and the last one to resolve wins.
type ServiceImpl struct {
	logger    *slog.Logger
	client    PlanService
	gallery   Composer
	presenter Presenter

	mu    sync.Mutex
	state types.RequestState
}

func NewRequestOrchestrator(client PlanService, composer Composer, presenter Presenter, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		client:    client,
		gallery:   composer,
		presenter: presenter,
		state:     types.StateIdle,
	}
}

// Submit issues one plan request and presents the outcome. The loading
// indicator is cleared exactly once on every exit path, including panics;
// nothing escaping this method is fatal to the session.
func (s *ServiceImpl) Submit(ctx context.Context, req types.PlanRequest) (err error) {
	requestID := uuid.NewString()

	ctx, span := otel.Tracer("RequestOrchestrator").Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("request_id", requestID),
			attribute.String("plan.city", req.City),
		))
	defer span.End()

	l := s.logger.With(
		slog.String("method", "Submit"),
		slog.String("request_id", requestID),
	)

	start := time.Now()
	outcome := "failure"

	s.setState(types.StateLoading)
	s.presenter.ClearResults()
	s.presenter.ShowLoading()

	defer func() {
		s.presenter.ClearLoading()
		observability.RecordPlanRequest(outcome, time.Since(start))

		if r := recover(); r != nil {
			s.setState(types.StateFailure)
			msg := fmt.Sprintf("unexpected error: %v", r)
			s.presenter.ShowFailure(msg)
			l.ErrorContext(ctx, "plan submission panicked", slog.Any("panic", r))
			span.SetStatus(codes.Error, "panic during submission")
			err = fmt.Errorf("plan submission panicked: %v", r)
		}
	}()

	l.InfoContext(ctx, "submitting plan request", slog.String("city", req.City), slog.Int("days", req.Days))

	resp, err := s.client.SubmitPlan(ctx, req)
	if err != nil {
		s.setState(types.StateFailure)
		outcome = "transport_error"
		s.presenter.ShowFailure(fmt.Sprintf("plan request failed: %v", err))
		l.ErrorContext(ctx, "plan request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return err
	}

	s.setState(types.StateSuccess)

	plans, err := s.gallery.Compose(ctx, resp, req.Interests)
	if err != nil {
		outcome = "data_error"
		var dataErr *types.DataError
		if errors.As(err, &dataErr) && errors.Is(dataErr.Reason, types.ErrNoItinerary) {
			s.presenter.ShowPlaceholder("The backend returned no itinerary for this request.")
		} else {
			s.presenter.ShowPlaceholder(err.Error())
		}
		l.WarnContext(ctx, "response carried no renderable plans", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "data error")
		return err
	}

	outcome = "success"
	s.presenter.ShowPlans(plans)
	s.presenter.ShowNarrative(s.gallery.Narrative(resp))

	l.InfoContext(ctx, "plan request completed", slog.Int("plans", len(plans)))
	span.SetAttributes(attribute.Int("plans.count", len(plans)))
	span.SetStatus(codes.Ok, "plan displayed")
	return nil
}

// State returns the current lifecycle state.
func (s *ServiceImpl) State() types.RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ServiceImpl) setState(state types.RequestState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
