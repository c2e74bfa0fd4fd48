package roll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartFromIdle(t *testing.T) {
	tests := []struct {
		name       string
		facingLeft bool
		want       float64
		wantDir    int
	}{
		{"right", false, 8, 1},
		{"left", true, -8, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			v := s.Start(tt.facingLeft)
			assert.Equal(t, tt.want, v)
			assert.True(t, s.Rolling)
			assert.Equal(t, Leap, s.Phase)
			assert.Equal(t, 3, s.PhaseTimer)
			assert.Equal(t, tt.wantDir, s.Direction)
		})
	}
}

func TestStartRefused(t *testing.T) {
	s := New()
	s.Start(false)
	s.Update()
	before := *s
	assert.Equal(t, 0.0, s.Start(true), "start while rolling")
	assert.Equal(t, before, *s)

	cooling := New()
	cooling.CooldownTimer = 5
	before = *cooling
	assert.Equal(t, 0.0, cooling.Start(false), "start while cooling down")
	assert.Equal(t, before, *cooling)
}

func TestFullCycle(t *testing.T) {
	s := New()
	require.Equal(t, 17, s.TotalFrames())
	s.Start(false)

	var phases []Phase
	calls := 0
	for s.Rolling {
		v := s.Update()
		calls++
		if s.Rolling {
			assert.Equal(t, 8.0, v, "frame %d", calls)
			phases = append(phases, s.Phase)
		} else {
			assert.Equal(t, 0.0, v, "finishing frame")
		}
		require.LessOrEqual(t, calls, 100)
	}

	assert.Equal(t, 17, calls)
	assert.Equal(t, 30, s.CooldownTimer)
	assert.Equal(t, 0.0, s.Distance)

	// Phases only ever advance by one step.
	for i := 1; i < len(phases); i++ {
		d := phases[i] - phases[i-1]
		assert.True(t, d == 0 || d == 1, "phase jumped from %v to %v", phases[i-1], phases[i])
	}
	assert.Equal(t, Finish, phases[len(phases)-1])
}

func TestCooldownCountsDown(t *testing.T) {
	s := New()
	s.Start(true)
	for s.Rolling {
		s.Update()
	}
	for i := 0; i < 29; i++ {
		assert.Equal(t, 0.0, s.Update())
		assert.False(t, s.CanStart())
	}
	assert.Equal(t, 0.0, s.Update())
	assert.Equal(t, 0, s.CooldownTimer)
	assert.True(t, s.CanStart())
	assert.Equal(t, -8.0, s.Start(true))
}

func TestUpdateIdleIsNoop(t *testing.T) {
	s := New()
	before := *s
	assert.Equal(t, 0.0, s.Update())
	assert.Equal(t, before, *s)
}

func TestProgress(t *testing.T) {
	s := New()
	s.Start(false)
	assert.InDelta(t, 0.0, s.Progress(), 1e-9)
	s.Update()
	assert.InDelta(t, 1.0/3.0, s.Progress(), 1e-9)
	s.Update()
	assert.InDelta(t, 2.0/3.0, s.Progress(), 1e-9)
	s.Update()
	assert.Equal(t, Hands, s.Phase)
	assert.InDelta(t, 0.0, s.Progress(), 1e-9)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Rolling", Rolling.String())
	assert.Equal(t, "Unknown", Phase(9).String())
}
