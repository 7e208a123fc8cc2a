package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/httpclients/s3"
)

type bucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *bucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer secret" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := strings.TrimPrefix(r.URL.Path, "/")

	switch r.Method {
	case http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		b.objects[key] = data
		w.WriteHeader(http.StatusCreated)
	case http.MethodGet:
		data, ok := b.objects[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = w.Write(data)
	case http.MethodDelete:
		delete(b.objects, key)
		w.WriteHeader(http.StatusNoContent)
	}
}

func TestClient_SaveOpenRemove(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(&bucket{objects: map[string][]byte{}})
	t.Cleanup(srv.Close)

	c := s3.NewClient(srv.URL, "secret")
	r.Equal(entity.StorageTypeCloud, c.Type())

	err := c.Save(ctx, "doc.pdf", strings.NewReader("content"), 7, "application/pdf")
	r.NoError(err)

	rc, err := c.Open(ctx, "doc.pdf")
	r.NoError(err)

	data, err := io.ReadAll(rc)
	r.NoError(err)
	r.NoError(rc.Close())
	r.Equal("content", string(data))

	r.NoError(c.Remove(ctx, "doc.pdf"))

	_, err = c.Open(ctx, "doc.pdf")
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestClient_Forbidden(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(&bucket{objects: map[string][]byte{}})
	t.Cleanup(srv.Close)

	c := s3.NewClient(srv.URL, "wrong")

	err := c.Save(context.Background(), "doc.pdf", strings.NewReader("x"), 1, "")
	require.Error(t, err)
}
