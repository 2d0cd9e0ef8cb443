package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/ledger"
)

// voteN casts n fresh-voter votes for the given option.
func (f *fixture) voteN(t *testing.T, pollID uint64, option, n int, seed int) {
	t.Helper()

	for i := 0; i < n; i++ {
		v := identity.Address(fmt.Sprintf("0x%040d", seed+i))
		f.approve(v)
		_, err := f.led.MintAndVote(pollID, option, v)
		require.NoError(t, err)
	}
}

func TestWinnerFirstMaxWins(t *testing.T) {
	f := newFixture(t)
	id := f.createPoll(t, "Tie", "Alice", "Bob", "Charlie")

	// Tallies [2, 2, 0]: the tie goes to the lowest index
	f.voteN(t, id, 0, 2, 1000)
	f.voteN(t, id, 1, 2, 2000)

	counts, err := f.led.Results(id)
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 2, 0}, counts)

	w, err := f.led.Winner(id)
	require.NoError(t, err)
	require.Equal(t, "Alice", w, "first option reaching the maximum wins")
}

func TestWinnerStrictlyGreaterDisplaces(t *testing.T) {
	f := newFixture(t)
	id := f.createPoll(t, "Shift", "Alice", "Bob", "Charlie")

	f.voteN(t, id, 0, 1, 1000)
	f.voteN(t, id, 2, 2, 2000)

	w, err := f.led.Winner(id)
	require.NoError(t, err)
	require.Equal(t, "Charlie", w)
}

func TestWinnerZeroVotes(t *testing.T) {
	f := newFixture(t)
	id := f.createPoll(t, "Quiet", "a", "b")

	// With no votes at all, every count ties at zero and index 0 wins
	w, err := f.led.Winner(id)
	require.NoError(t, err)
	require.Equal(t, "a", w)
}

func TestWinnerIsStable(t *testing.T) {
	f := newFixture(t)
	id := f.createPoll(t, "Stable", "x", "y")
	f.voteN(t, id, 0, 1, 1000)
	f.voteN(t, id, 1, 1, 2000)

	first, err := f.led.Winner(id)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := f.led.Winner(id)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestWinnerAfterDeadline(t *testing.T) {
	f := newFixture(t)
	id := f.createPoll(t, "Done", "yes", "no")
	f.voteN(t, id, 1, 1, 1000)

	// Reads stay available after the poll closes
	f.clock.Advance(2 * time.Hour)
	w, err := f.led.Winner(id)
	require.NoError(t, err)
	require.Equal(t, "no", w)

	counts, err := f.led.Results(id)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, counts)
}

// mockBalances satisfies ledger.BalanceStore without a real token store,
// proving the capability can be substituted in tests.
type mockBalances struct {
	balance   map[identity.Address]uint64
	burnErr   error
	burnCalls int
}

func (m *mockBalances) Mint(to identity.Address, amount uint64) {
	if m.balance == nil {
		m.balance = make(map[identity.Address]uint64)
	}
	m.balance[to] += amount
}

func (m *mockBalances) BalanceOf(holder identity.Address) uint64 {
	return m.balance[holder]
}

func (m *mockBalances) BurnFrom(holder identity.Address, amount uint64) error {
	m.burnCalls++
	if m.burnErr != nil {
		return m.burnErr
	}
	m.balance[holder] -= amount
	return nil
}

func (m *mockBalances) Allowance(identity.Address) uint64 {
	return 1
}

func TestMockBalanceStore(t *testing.T) {
	mock := &mockBalances{burnErr: fmt.Errorf("store offline")}
	led := ledger.New(mock, nil, ledger.WithClock(func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, led.Bootstrap(authority))

	id, err := led.CreatePoll(authority, "Mocked", []string{"a", "b"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, led.Claim(id, alice))
	err = led.CastVote(id, 0, alice)
	require.ErrorIs(t, err, ledger.ErrNotAuthorized)
	require.Equal(t, 1, mock.burnCalls)

	// Rollback left the books clean
	voted, _ := led.HasVoted(id, alice)
	require.False(t, voted)

	mock.burnErr = nil
	require.NoError(t, led.CastVote(id, 0, alice))
}
