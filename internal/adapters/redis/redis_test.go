// adapters/redis/redis_test.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/rkarim/chatcart/internal/ports"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(mr.Addr(), "", "", 0, ttl), mr
}

func TestCache_MissReturnsSentinel(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, ports.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss", err)
	}
}

func TestCache_SetGetRoundtrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "categories", []string{"Pizza", "Drinks"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	b, err := c.Get(ctx, "categories")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	var got []string
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if len(got) != 2 || got[0] != "Pizza" {
		t.Errorf("got = %v", got)
	}
}

func TestCache_EmptyValueIsAHit(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "items:Drinks", []string{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := c.Get(ctx, "items:Drinks"); err != nil {
		t.Errorf("an empty cached list must still be a hit, got %v", err)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "categories", []string{"Pizza"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := c.Get(ctx, "categories"); !errors.Is(err, ports.ErrCacheMiss) {
		t.Errorf("expired key should miss, got %v", err)
	}
}

func TestCache_Ping(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	mr.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Error("Ping() should fail once the server is gone")
	}
}
