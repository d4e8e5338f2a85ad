package insights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/cache"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// DefaultCacheTTL is used when CachedSuggester is given a non-positive TTL.
const DefaultCacheTTL = 24 * time.Hour

const (
	keyPrefix = "insight:"
	cacheType = "redis"
)

var _ domain.ContentSuggester = (*CachedSuggester)(nil)

// CacheObserver is told about every cache lookup.
type CacheObserver interface {
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
}

type nopObserver struct{}

func (nopObserver) RecordCacheHit(string)  {}
func (nopObserver) RecordCacheMiss(string) {}

// CacheOption configures a CachedSuggester.
type CacheOption func(*CachedSuggester)

// WithObserver reports hits and misses to o.
func WithObserver(o CacheObserver) CacheOption {
	return func(s *CachedSuggester) { s.observer = o }
}

// CachedSuggester memoizes another suggester in Redis. Cache failures are
// logged and bypassed.
type CachedSuggester struct {
	inner    domain.ContentSuggester
	cache    *cache.Client
	ttl      time.Duration
	log      logger.Logger
	observer CacheObserver
}

// NewCachedSuggester wraps inner with a Redis cache.
func NewCachedSuggester(inner domain.ContentSuggester, c *cache.Client, ttl time.Duration, log logger.Logger, opts ...CacheOption) *CachedSuggester {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	s := &CachedSuggester{inner: inner, cache: c, ttl: ttl, log: log, observer: nopObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suggest implements domain.ContentSuggester.
func (s *CachedSuggester) Suggest(ctx context.Context, lead models.Lead) (string, error) {
	key := cacheKey(lead)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.observer.RecordCacheHit(cacheType)
		s.log.Debug("insight cache hit", "lead_id", lead.ID)
		return cached, nil
	case !errors.Is(err, cache.ErrMiss):
		s.log.Warn("insight cache read failed", "lead_id", lead.ID, "error", err)
	}
	s.observer.RecordCacheMiss(cacheType)

	text, err := s.inner.Suggest(ctx, lead)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
		s.log.Warn("insight cache write failed", "lead_id", lead.ID, "error", err)
	}
	return text, nil
}

// Invalidate drops every cached suggestion for a lead.
func (s *CachedSuggester) Invalidate(ctx context.Context, leadID string) error {
	_, err := s.cache.DeletePattern(ctx, keyPrefix+leadID+":*")
	return err
}

// Listener returns a store listener that invalidates a lead's suggestions
// whenever the lead is edited or moves stage.
func (s *CachedSuggester) Listener() store.Listener {
	return func(e store.Event) {
		switch e.Kind {
		case store.EventLeadUpdated, store.EventLeadStageMoved:
		default:
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Invalidate(ctx, e.LeadID); err != nil {
			s.log.Warn("insight cache invalidation failed", "lead_id", e.LeadID, "error", err)
		}
	}
}

func cacheKey(lead models.Lead) string {
	material := append([]string{string(lead.Stage)}, lead.Tags...)
	sum := sha256.Sum256([]byte(strings.Join(material, "\x1f")))
	return fmt.Sprintf("%s%s:%s", keyPrefix, lead.ID, hex.EncodeToString(sum[:8]))
}
