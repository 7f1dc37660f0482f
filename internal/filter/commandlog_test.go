package filter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/internal/storage"
)

func TestCommandLogRecordsInvocation(t *testing.T) {
	store, err := storage.New(filepath.Join(t.TempDir(), "herald.json"))
	require.NoError(t, err)
	defer store.Close()

	cl := &CommandLog{Storage: store}
	c := call()
	require.NoError(t, cl.Filter(c, &stubContext{authorID: "alice", guildID: "guild-1"}, nil))
	assert.False(t, c.Cancelled(), "logging never cancels")

	records, err := store.GetCommandHistory("guild-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ping", records[0].Command)
	assert.Equal(t, "alice", records[0].Username)
}

func TestCommandLogSkipsDirectMessages(t *testing.T) {
	store, err := storage.New(filepath.Join(t.TempDir(), "herald.json"))
	require.NoError(t, err)
	defer store.Close()

	cl := &CommandLog{Storage: store}
	require.NoError(t, cl.Filter(call(), &stubContext{authorID: "alice"}, nil))

	records, err := store.GetCommandHistory("guild-1")
	require.NoError(t, err)
	assert.Empty(t, records)
}
