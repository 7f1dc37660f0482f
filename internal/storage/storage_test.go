package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "herald.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrefixRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	prefix, err := s.GetPrefix("guild-1")
	if err != nil {
		t.Fatal(err)
	}
	if prefix != "" {
		t.Errorf("fresh guild prefix = %q, want empty", prefix)
	}

	if err := s.SetPrefix("guild-1", "?"); err != nil {
		t.Fatal(err)
	}
	prefix, err = s.GetPrefix("guild-1")
	if err != nil {
		t.Fatal(err)
	}
	if prefix != "?" {
		t.Errorf("prefix = %q, want ?", prefix)
	}

	// Other guilds are unaffected.
	other, err := s.GetPrefix("guild-2")
	if err != nil {
		t.Fatal(err)
	}
	if other != "" {
		t.Errorf("guild-2 prefix = %q, want empty", other)
	}
}

func TestCommandHistoryIsBounded(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		err := s.AddCommandHistory("guild-1", CommandHistoryRecord{
			ChannelID: "channel-1",
			UserID:    "user-1",
			Username:  "alice",
			Command:   "ping",
			Datetime:  time.Now(),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	records, err := s.GetCommandHistory("guild-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != commandHistoryLimit {
		t.Errorf("history length = %d, want %d", len(records), commandHistoryLimit)
	}
}
