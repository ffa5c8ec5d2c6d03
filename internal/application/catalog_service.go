// internal/application/catalog_service.go
package application

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rkarim/chatcart/internal/domain"
	"github.com/rkarim/chatcart/internal/ports"
)

const (
	categoriesKey  = "categories"
	itemsKeyPrefix = "items:"
)

// CatalogService memoizes the upstream catalog through the cache port.
// Upstream read failures are recovered into empty results so browsing stays
// available; the only place that surfaces them is the list_categories 503.
type CatalogService struct {
	gateway ports.GatewayPort
	cache   ports.CachePort
	log     logrus.FieldLogger
}

func NewCatalogService(gateway ports.GatewayPort, cache ports.CachePort, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{gateway: gateway, cache: cache, log: log}
}

// Categories returns the enabled category names. Only a non-empty fetch is
// cached, so an unreachable category service is retried on the next call
// instead of poisoning the cache.
func (s *CatalogService) Categories(ctx context.Context) []string {
	if b, err := s.cache.Get(ctx, categoriesKey); err == nil {
		var cats []string
		if json.Unmarshal(b, &cats) == nil {
			return cats
		}
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.WithError(err).Warn("category cache read failed")
	}
	cats, err := s.gateway.FetchCategories(ctx)
	if err != nil {
		s.log.WithError(err).Warn("category fetch failed")
		return nil
	}
	if len(cats) > 0 {
		if err := s.cache.Set(ctx, categoriesKey, cats); err != nil {
			s.log.WithError(err).Warn("category cache write failed")
		}
	}
	return cats
}

// Items returns a category's items. Presence of the cache key decides the
// hit, not emptiness: a category that legitimately has zero items is cached
// as such, while a failed fetch is not cached at all.
func (s *CatalogService) Items(ctx context.Context, category string) []domain.Item {
	key := itemsKeyPrefix + strings.TrimSpace(category)
	if b, err := s.cache.Get(ctx, key); err == nil {
		var items []domain.Item
		if json.Unmarshal(b, &items) == nil {
			return items
		}
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.WithError(err).Warn("item cache read failed")
	}
	items, err := s.gateway.FetchItems(ctx, category)
	if err != nil {
		s.log.WithError(err).WithField("category", category).Warn("item fetch failed")
		return nil
	}
	if items == nil {
		items = []domain.Item{}
	}
	if err := s.cache.Set(ctx, key, items); err != nil {
		s.log.WithError(err).Warn("item cache write failed")
	}
	return items
}
