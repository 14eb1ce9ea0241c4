package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/travelbot-console/internal/domain/gallery"
	"github.com/FACorreiaa/travelbot-console/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTransport struct {
	resp      *types.PlanResponse
	err       error
	panicWith any
}

func (f *fakeTransport) SubmitPlan(context.Context, types.PlanRequest) (*types.PlanResponse, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.resp, f.err
}

type fakeComposer struct {
	plans     []gallery.RenderedPlan
	err       error
	narrative string
}

func (f *fakeComposer) Compose(context.Context, *types.PlanResponse, []string) ([]gallery.RenderedPlan, error) {
	return f.plans, f.err
}

func (f *fakeComposer) Narrative(*types.PlanResponse) string { return f.narrative }

type recordingPresenter struct {
	showLoading  int
	clearLoading int
	clearResults int
	failures     []string
	placeholders []string
	narratives   []string
	plans        [][]gallery.RenderedPlan
}

func (p *recordingPresenter) ShowLoading()  { p.showLoading++ }
func (p *recordingPresenter) ClearLoading() { p.clearLoading++ }
func (p *recordingPresenter) ClearResults() { p.clearResults++ }

func (p *recordingPresenter) ShowFailure(msg string) { p.failures = append(p.failures, msg) }

func (p *recordingPresenter) ShowPlaceholder(msg string) {
	p.placeholders = append(p.placeholders, msg)
}

func (p *recordingPresenter) ShowNarrative(text string) { p.narratives = append(p.narratives, text) }
func (p *recordingPresenter) ShowPlans(plans []gallery.RenderedPlan) {
	p.plans = append(p.plans, plans)
}

func TestSubmitSuccess(t *testing.T) {
	transport := &fakeTransport{resp: &types.PlanResponse{Plans: []types.Plan{{ID: "A"}}}}
	composer := &fakeComposer{
		plans:     []gallery.RenderedPlan{{Plan: types.Plan{ID: "A"}}},
		narrative: "Day trip",
	}
	presenter := &recordingPresenter{}
	orch := NewRequestOrchestrator(transport, composer, presenter, testLogger())

	err := orch.Submit(context.Background(), types.PlanRequest{City: "osaka", Days: 2})

	require.NoError(t, err)
	assert.Equal(t, types.StateSuccess, orch.State())
	assert.Equal(t, 1, presenter.showLoading)
	assert.Equal(t, 1, presenter.clearLoading, "loading must be cleared exactly once")
	assert.Equal(t, 1, presenter.clearResults, "previous output must be cleared on entry")
	require.Len(t, presenter.plans, 1)
	assert.Equal(t, []string{"Day trip"}, presenter.narratives)
	assert.Empty(t, presenter.failures)
}

func TestSubmitTransportFailure(t *testing.T) {
	transport := &fakeTransport{
		err: &types.TransportError{Op: "plan", Status: 502, Body: "upstream LLM unavailable"},
	}
	presenter := &recordingPresenter{}
	orch := NewRequestOrchestrator(transport, &fakeComposer{}, presenter, testLogger())

	err := orch.Submit(context.Background(), types.PlanRequest{City: "osaka"})

	assert.Error(t, err)
	assert.Equal(t, types.StateFailure, orch.State())
	assert.Equal(t, 1, presenter.clearLoading)
	require.Len(t, presenter.failures, 1)
	assert.Contains(t, presenter.failures[0], "upstream LLM unavailable",
		"failure message must embed the underlying error text")
	assert.Empty(t, presenter.plans)
}

func TestSubmitDataErrorShowsPlaceholder(t *testing.T) {
	transport := &fakeTransport{resp: &types.PlanResponse{}}
	composer := &fakeComposer{err: &types.DataError{Reason: types.ErrNoItinerary}}
	presenter := &recordingPresenter{}
	orch := NewRequestOrchestrator(transport, composer, presenter, testLogger())

	err := orch.Submit(context.Background(), types.PlanRequest{City: "osaka"})

	assert.Error(t, err)
	assert.Equal(t, types.StateSuccess, orch.State(), "transport succeeded; the data was just empty")
	assert.Equal(t, 1, presenter.clearLoading)
	require.Len(t, presenter.placeholders, 1)
	assert.Contains(t, presenter.placeholders[0], "no itinerary")
	assert.Empty(t, presenter.plans)
}

func TestSubmitPanicStillClearsLoading(t *testing.T) {
	transport := &fakeTransport{panicWith: "decoder exploded"}
	presenter := &recordingPresenter{}
	orch := NewRequestOrchestrator(transport, &fakeComposer{}, presenter, testLogger())

	var err error
	require.NotPanics(t, func() {
		err = orch.Submit(context.Background(), types.PlanRequest{City: "osaka"})
	})

	assert.Error(t, err)
	assert.Equal(t, types.StateFailure, orch.State())
	assert.Equal(t, 1, presenter.clearLoading, "loading must be cleared even on panic")
	require.Len(t, presenter.failures, 1)
	assert.Contains(t, presenter.failures[0], "decoder exploded")
}

func TestResubmissionReentersLoadingFromAnyState(t *testing.T) {
	transport := &fakeTransport{err: &types.TransportError{Op: "plan", Status: 500, Body: "boom"}}
	presenter := &recordingPresenter{}
	composer := &fakeComposer{plans: []gallery.RenderedPlan{{}}}
	orch := NewRequestOrchestrator(transport, composer, presenter, testLogger())

	_ = orch.Submit(context.Background(), types.PlanRequest{City: "osaka"})
	require.Equal(t, types.StateFailure, orch.State())

	transport.err = nil
	transport.resp = &types.PlanResponse{Plans: []types.Plan{{ID: "A"}}}
	err := orch.Submit(context.Background(), types.PlanRequest{City: "osaka"})

	require.NoError(t, err)
	assert.Equal(t, types.StateSuccess, orch.State())
	assert.Equal(t, 2, presenter.showLoading)
	assert.Equal(t, 2, presenter.clearLoading)
}
