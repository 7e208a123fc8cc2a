package local_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/storage/local"
)

func TestStorage(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctx := context.Background()

	s, err := local.New(t.TempDir())
	r.NoError(err)
	r.Equal(entity.StorageTypeLocal, s.Type())

	r.NoError(s.Save(ctx, "a.pdf", strings.NewReader("hello"), 5, "application/pdf"))

	rc, err := s.Open(ctx, "a.pdf")
	r.NoError(err)

	data, err := io.ReadAll(rc)
	r.NoError(err)
	r.NoError(rc.Close())
	r.Equal("hello", string(data))

	r.NoError(s.Remove(ctx, "a.pdf"))
	r.NoError(s.Remove(ctx, "a.pdf"))

	_, err = s.Open(ctx, "a.pdf")
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestStorage_RejectsPathKeys(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, err := local.New(t.TempDir())
	r.NoError(err)

	r.Error(s.Save(context.Background(), "../escape", strings.NewReader("x"), 1, ""))
	r.Error(s.Save(context.Background(), "", strings.NewReader("x"), 1, ""))
}
