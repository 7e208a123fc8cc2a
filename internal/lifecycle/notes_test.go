package lifecycle_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/internal/lifecycle"
)

func TestAppendNote(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 5, 9, 7, 0, 0, time.UTC)

	got := lifecycle.AppendNote("", "hello", "Ana", at)
	require.Equal(t, "[05/01/2025 09:07 - Ana] hello", got)
	require.Len(t, lifecycle.SplitNotes(got), 1)

	prior := got
	require.Equal(t, prior, lifecycle.AppendNote(prior, "", "Ana", at))
	require.Equal(t, prior, lifecycle.AppendNote(prior, "  \n\t", "Ana", at))

	got = lifecycle.AppendNote(prior, "protocolo enviado", "Bruno", at.Add(time.Hour))
	require.True(t, strings.HasPrefix(got, prior+"\n\n"))
	require.Equal(t, []string{
		"[05/01/2025 09:07 - Ana] hello",
		"[05/01/2025 10:07 - Bruno] protocolo enviado",
	}, lifecycle.SplitNotes(got))
}

func TestSplitNotes_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, lifecycle.SplitNotes(""))
	require.Equal(t, []string{"legacy note"}, lifecycle.SplitNotes("legacy note\n\n\n\n"))
}
