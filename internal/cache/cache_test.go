package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type stubRedis struct {
	store map[string]string
}

func (s *stubRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if s.store == nil {
		s.store = make(map[string]string)
	}

	switch v := value.(type) {
	case []byte:
		s.store[key] = string(v)
	case string:
		s.store[key] = v
	}

	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")

	return cmd
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)

	val, ok := s.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}

	cmd.SetVal(val)

	return cmd
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64

	for _, key := range keys {
		if _, ok := s.store[key]; ok {
			delete(s.store, key)
			removed++
		}
	}

	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(removed)

	return cmd
}

func TestCache_RoundTrip(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctx := context.Background()

	stub := &stubRedis{}
	c := New(stub)

	var got []entity.City

	ok, err := c.Get(ctx, "cidades:SP", &got)
	r.NoError(err)
	r.False(ok)

	cities := []entity.City{{ID: 3550308, Name: "São Paulo"}}
	r.NoError(c.Set(ctx, "cidades:SP", cities, time.Hour))
	r.Contains(stub.store, "alvaras:cidades:SP")

	ok, err = c.Get(ctx, "cidades:SP", &got)
	r.NoError(err)
	r.True(ok)
	r.Equal(cities, got)

	r.NoError(c.Delete(ctx, "cidades:SP"))

	ok, err = c.Get(ctx, "cidades:SP", &got)
	r.NoError(err)
	r.False(ok)
}

func TestCache_CorruptValue(t *testing.T) {
	t.Parallel()

	stub := &stubRedis{store: map[string]string{"alvaras:cnpj:1": "{"}}
	c := New(stub)

	var got entity.RegistryCompany

	_, err := c.Get(context.Background(), "cnpj:1", &got)
	require.Error(t, err)
}
