package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/travelbot-console/internal/types"
	"github.com/FACorreiaa/travelbot-console/pkg/interceptors"
)

// Client talks to the travelbot backend. It is the only component that
// performs network I/O; every failure is surfaced as a *types.TransportError
// and handled by the caller, never retried here.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// New builds a Client against the given base URL. Outbound requests carry an
// X-Request-ID header and structured request/response logs.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend base URL %q: scheme and host required", baseURL)
	}

	rt := interceptors.NewLoggingTransport(
		interceptors.NewRequestIDTransport(nil),
		logger,
	)

	return &Client{
		baseURL: parsed,
		http: &http.Client{
			Transport: rt,
			Timeout:   timeout,
		},
		logger: logger,
	}, nil
}

// Health checks backend availability. A transport failure means the backend
// is unconfirmed, not that the session should stop.
func (c *Client) Health(ctx context.Context) (types.HealthStatus, error) {
	ctx, span := otel.Tracer("TransportClient").Start(ctx, "Health")
	defer span.End()

	var status types.HealthStatus
	if err := c.getJSON(ctx, "health", "/health", &status); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "health check failed")
		return types.HealthStatus{}, err
	}

	span.SetAttributes(
		attribute.Bool("backend.llm", status.LLM),
		attribute.Bool("backend.maps", status.Maps),
	)
	span.SetStatus(codes.Ok, "backend reachable")
	return status, nil
}

// Cities fetches the supported city list.
func (c *Client) Cities(ctx context.Context) ([]types.City, error) {
	ctx, span := otel.Tracer("TransportClient").Start(ctx, "Cities")
	defer span.End()

	var payload struct {
		Cities []types.City `json:"cities"`
	}
	if err := c.getJSON(ctx, "cities", "/cities", &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "city list fetch failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("cities.count", len(payload.Cities)))
	span.SetStatus(codes.Ok, "city list fetched")
	return payload.Cities, nil
}

// SubmitPlan posts the plan request and decodes the response. Non-OK
// statuses surface the response body text inside the returned error.
func (c *Client) SubmitPlan(ctx context.Context, req types.PlanRequest) (*types.PlanResponse, error) {
	ctx, span := otel.Tracer("TransportClient").Start(ctx, "SubmitPlan")
	defer span.End()

	req = req.Normalized()
	span.SetAttributes(
		attribute.String("plan.city", req.City),
		attribute.Int("plan.days", req.Days),
		attribute.Int("plan.num_plans", req.NumPlans),
	)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve("/plan"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build plan request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		terr := &types.TransportError{Op: "plan", Err: err}
		span.RecordError(terr)
		span.SetStatus(codes.Error, "plan submission failed")
		return nil, terr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		terr := &types.TransportError{Op: "plan", Status: resp.StatusCode, Body: readBodyText(resp.Body)}
		span.RecordError(terr)
		span.SetStatus(codes.Error, "plan submission rejected")
		return nil, terr
	}

	var planResp types.PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&planResp); err != nil {
		terr := &types.TransportError{Op: "plan", Err: fmt.Errorf("failed to decode response: %w", err)}
		span.RecordError(terr)
		span.SetStatus(codes.Error, "plan response undecodable")
		return nil, terr
	}

	span.SetAttributes(attribute.Int("plan.alternatives", len(planResp.Plans)))
	span.SetStatus(codes.Ok, "plan received")
	return &planResp, nil
}

// ResolveImageURL turns a relative city image path into an absolute URL
// against the backend base. Failure hides the image; callers log, never
// surface it.
func (c *Client) ResolveImageURL(imagePath string) (string, error) {
	if strings.TrimSpace(imagePath) == "" {
		return "", types.ErrImageUnresolvable
	}
	ref, err := url.Parse(imagePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrImageUnresolvable, err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &types.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &types.TransportError{Op: op, Status: resp.StatusCode, Body: readBodyText(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *Client) resolve(path string) string {
	ref := &url.URL{Path: path}
	return c.baseURL.ResolveReference(ref).String()
}

func readBodyText(r io.Reader) string {
	const maxErrorBody = 4 << 10
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
