package services

import (
	"context"
	"sync"
	"time"

	"github.com/clinicware/clinic-assist/internal/infrastructure/clients/diagnosisapi"
	"github.com/clinicware/clinic-assist/internal/infrastructure/observability"
	"github.com/clinicware/clinic-assist/pkg/retry"
)

// SymptomCatalogService caches the symptom tokens known to the diagnosis
// service. Suggestions are best-effort: reads never block on the upstream,
// and when a refresh fails the previous catalog (possibly empty) keeps
// being served.
type SymptomCatalogService struct {
	client  diagnosisapi.Client
	ttl     time.Duration
	metrics *observability.Metrics

	mu         sync.Mutex
	symptoms   []string
	fetchedAt  time.Time
	refreshing bool
}

// NewSymptomCatalogService creates a catalog service with the given cache
// TTL. A non-positive TTL disables expiry.
func NewSymptomCatalogService(client diagnosisapi.Client, ttl time.Duration, metrics *observability.Metrics) *SymptomCatalogService {
	return &SymptomCatalogService{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Warm fetches the catalog with exponential backoff. Meant to run once at
// startup; the interactive flows never block on it.
func (s *SymptomCatalogService) Warm(ctx context.Context) error {
	return retry.Do(ctx, retry.DefaultConfig(), func() error {
		return s.refresh(ctx)
	})
}

// Symptoms returns the cached catalog without blocking. A lapsed TTL kicks
// off at most one background refresh; readers keep getting the stale
// catalog until it lands.
func (s *SymptomCatalogService) Symptoms(ctx context.Context) []string {
	s.mu.Lock()
	cached := append([]string(nil), s.symptoms...)
	if s.fresh() {
		s.mu.Unlock()
		observability.RecordCatalogHit(ctx, s.metrics)
		return cached
	}
	start := !s.refreshing
	s.refreshing = true
	s.mu.Unlock()

	if start {
		go s.refreshInBackground()
	}
	return cached
}

// refreshInBackground runs one refresh detached from the request that
// noticed the lapsed TTL. The client's own timeout bounds the call.
func (s *SymptomCatalogService) refreshInBackground() {
	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	if err := s.refresh(context.Background()); err != nil {
		observability.GetLogger().Warn().
			Err(err).
			Msg("symptom catalog refresh failed, serving stale catalog")
	}
}

func (s *SymptomCatalogService) refresh(ctx context.Context) error {
	symptoms, err := s.client.ListSymptoms(ctx)
	observability.RecordCatalogRefresh(ctx, s.metrics, err == nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.symptoms = symptoms
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// fresh reports whether the cached catalog is still valid. Callers must
// hold s.mu.
func (s *SymptomCatalogService) fresh() bool {
	if s.fetchedAt.IsZero() {
		return false
	}
	if s.ttl <= 0 {
		return true
	}
	return time.Since(s.fetchedAt) < s.ttl
}
