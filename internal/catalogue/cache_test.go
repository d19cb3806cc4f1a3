package catalogue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, NewRedisCache(client, time.Minute)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	_, cache := newTestRedis(t)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "course:x"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	cache.Set(ctx, "course:x", []byte(`{"id":"x"}`))
	value, ok := cache.Get(ctx, "course:x")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if string(value) != `{"id":"x"}` {
		t.Fatalf("unexpected value: %s", value)
	}
}

func TestRedisCacheTTLEviction(t *testing.T) {
	server, cache := newTestRedis(t)
	ctx := context.Background()

	cache.Set(ctx, "course:y", []byte(`{}`))
	server.FastForward(2 * time.Minute)

	if _, ok := cache.Get(ctx, "course:y"); ok {
		t.Fatalf("expected miss after TTL expiry")
	}
}

func TestServiceGetCourseReadsThroughCache(t *testing.T) {
	_, cache := newTestRedis(t)
	repo := NewMemoryRepo()
	svc := NewService(repo, cache)
	ctx := context.Background()

	first, err := svc.GetCourse(ctx, "oxford-cs")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}

	// mutate the repo; a cached read must still see the original value
	changed := first
	changed.Name = "Renamed"
	repo.PutCourse(changed)

	second, err := svc.GetCourse(ctx, "oxford-cs")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if second.Name != first.Name {
		t.Fatalf("expected cached course %q, got %q", first.Name, second.Name)
	}
}
