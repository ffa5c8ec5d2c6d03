// internal/ports/ports.go
package ports

import (
	"context"
	"errors"

	"github.com/rkarim/chatcart/internal/domain"
)

// ErrCacheMiss is returned by CachePort.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// GatewayPort is the boundary to the upstream category, item and billing
// services.
type GatewayPort interface {
	FetchCategories(ctx context.Context) ([]string, error)
	FetchItems(ctx context.Context, category string) ([]domain.Item, error)
	SubmitBill(ctx context.Context, user *domain.UserProfile, lines []domain.CartLine) (map[string]any, error)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	Ping(ctx context.Context) error
}

// CompleterPort is a single prompt-completion call against a language model.
type CompleterPort interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
