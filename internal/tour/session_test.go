package tour

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionAdvanceWalksRouteOnce(t *testing.T) {
	s := NewSession("en", testRoute())
	require.Nil(t, s.CurrentSpot())

	first := s.Advance()
	require.NotNil(t, first)
	require.Equal(t, "gwanghwamun", first.Code)
	require.Equal(t, first, s.CurrentSpot())

	second := s.Advance()
	require.Equal(t, "gyeonghoeru", second.Code)

	require.Nil(t, s.Advance())
	require.Nil(t, s.CurrentSpot())
}

func TestSessionAdvanceResetsTurnCounter(t *testing.T) {
	s := NewSession("en", testRoute())
	s.Advance()
	require.Equal(t, 1, s.NextQATurn())
	require.Equal(t, 2, s.NextQATurn())
	s.Advance()
	require.Equal(t, 0, s.QATurns())
}

func TestSessionWakeCooldown(t *testing.T) {
	s := NewSession("en", testRoute())
	require.True(t, s.AllowWakeInterrupt(time.Hour))
	require.False(t, s.AllowWakeInterrupt(time.Hour))
	require.True(t, s.AllowWakeInterrupt(0))
}

func TestSessionSnapshot(t *testing.T) {
	s := NewSession("ko", testRoute())
	s.Advance()
	s.SetState(StateNarrating)
	s.NextQATurn()

	snap := s.Snapshot()
	require.Equal(t, "ko", snap.Language)
	require.Equal(t, StateNarrating, snap.State)
	require.Equal(t, "gwanghwamun", snap.SpotCode)
	require.Equal(t, 0, snap.SpotIndex)
	require.Equal(t, 2, snap.SpotCount)
	require.Equal(t, 1, snap.QATurns)
}
