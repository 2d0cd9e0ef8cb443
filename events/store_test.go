package events_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/tokenpoll/db"
	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/identity"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+t.TempDir()+"/events.db")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn))
	return conn
}

func TestStoreAppendAndList(t *testing.T) {
	store := events.NewStore(openTestDB(t))

	voter := identity.Address("0xcccccccccccccccccccccccccccccccccccccccc")
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	created := events.PollCreated(0, "Lunch spot", base.Add(time.Hour), base)
	issued := events.CredentialIssued(0, voter, 1, base.Add(time.Second))
	cast := events.VoteCast(0, voter, "yes", base.Add(2*time.Second))
	other := events.PollCreated(1, "Second poll", base.Add(time.Hour), base.Add(3*time.Second))

	for _, e := range []events.Event{created, issued, cast, other} {
		require.NoError(t, store.Append(e))
	}

	got, err := store.ListByPoll(0)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, events.KindPollCreated, got[0].Kind)
	require.Equal(t, "Lunch spot", got[0].Title)
	require.Equal(t, base.Add(time.Hour), got[0].Deadline)
	require.Equal(t, created.ID, got[0].ID)

	require.Equal(t, events.KindCredentialIssued, got[1].Kind)
	require.Equal(t, voter, got[1].Address)
	require.EqualValues(t, 1, got[1].Amount)

	require.Equal(t, events.KindVoteCast, got[2].Kind)
	require.Equal(t, "yes", got[2].Option)
	require.True(t, got[2].Deadline.IsZero())

	recent, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first
	require.Equal(t, other.ID, recent[0].ID)
}

func TestLogSnapshot(t *testing.T) {
	log := events.NewLog()
	require.Empty(t, log.Events())

	e := events.VoteCast(3, "0xdddddddddddddddddddddddddddddddddddddddd", "no", time.Now())
	require.NoError(t, log.Append(e))

	snap := log.Events()
	require.Len(t, snap, 1)
	require.Equal(t, e.ID, snap[0].ID)

	// Snapshot is a copy, not a live view
	require.NoError(t, log.Append(e))
	require.Len(t, snap, 1)
}
