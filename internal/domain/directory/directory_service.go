package directory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/travelbot-console/internal/types"
	"github.com/FACorreiaa/travelbot-console/pkg/observability"
)

// Fetcher pulls the city list from the backend.
type Fetcher interface {
	Cities(ctx context.Context) ([]types.City, error)
}

// Resolver turns a relative city image path into an absolute URL.
type Resolver interface {
	ResolveImageURL(imagePath string) (string, error)
}

type Service interface {
	Load(ctx context.Context, cities []types.City)
	Lookup(code string) (types.City, error)
	Codes() []string
	Refresh(ctx context.Context) error
	ImageURL(city types.City) string
}

// ServiceImpl caches city metadata. The cache is replaced wholesale on every
// successful load; nothing else mutates it.
type ServiceImpl struct {
	logger   *slog.Logger
	fetcher  Fetcher
	resolver Resolver

	mu    sync.Mutex
	cache *cache.Cache
	codes []string
}

func NewCityDirectory(fetcher Fetcher, resolver Resolver, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		fetcher:  fetcher,
		resolver: resolver,
		cache:    cache.New(cache.NoExpiration, 0),
	}
}

// Load replaces the entire cache with the given cities. There is no
// incremental merge: stale entries from a previous load never survive.
func (s *ServiceImpl) Load(ctx context.Context, cities []types.City) {
	_, span := otel.Tracer("CityDirectory").Start(ctx, "Load")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Flush()
	s.codes = make([]string, 0, len(cities))
	for _, city := range cities {
		s.cache.Set(city.Code, city, cache.NoExpiration)
		s.codes = append(s.codes, city.Code)
	}

	observability.RecordCityLoad()
	span.SetAttributes(attribute.Int("cities.count", len(cities)))
	s.logger.InfoContext(ctx, "city directory replaced", slog.Int("count", len(cities)))
}

// Lookup finds a city by exact, case-sensitive code match.
func (s *ServiceImpl) Lookup(code string) (types.City, error) {
	cached, found := s.cache.Get(code)
	if !found {
		return types.City{}, types.ErrNotFound
	}
	return cached.(types.City), nil
}

// Codes returns the city codes of the most recent load, in received order.
func (s *ServiceImpl) Codes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]string, len(s.codes))
	copy(codes, s.codes)
	return codes
}

// Refresh fetches the city list and replaces the cache on success. A
// transport failure leaves the directory untouched.
func (s *ServiceImpl) Refresh(ctx context.Context) error {
	ctx, span := otel.Tracer("CityDirectory").Start(ctx, "Refresh")
	defer span.End()

	l := s.logger.With(slog.String("method", "Refresh"))

	cities, err := s.fetcher.Cities(ctx)
	if err != nil {
		l.WarnContext(ctx, "city list fetch failed, keeping current directory", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "city list fetch failed")
		return err
	}

	s.Load(ctx, cities)
	span.SetStatus(codes.Ok, "city directory refreshed")
	return nil
}

// ImageURL resolves the city's image path to an absolute URL. Resolution
// failure hides the image: it is logged, never surfaced to the user.
func (s *ServiceImpl) ImageURL(city types.City) string {
	if s.resolver == nil || city.ImagePath == "" {
		return ""
	}
	resolved, err := s.resolver.ResolveImageURL(city.ImagePath)
	if err != nil {
		if !errors.Is(err, types.ErrImageUnresolvable) {
			s.logger.Warn("unexpected image resolution error", slog.String("city", city.Code), slog.Any("error", err))
			return ""
		}
		s.logger.Debug("city image hidden", slog.String("city", city.Code), slog.Any("error", err))
		return ""
	}
	return resolved
}
