package panel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxTicks = 10000

// threeX builds a line of three panels spaced along X that open along +Z.
func threeX(order Order) *Line {
	return NewLine("test", mgl32.Vec3{0, 0, 1}, order, 2,
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, mgl32.Vec3{20, 0, 0})
}

func runUntilIdle(t *testing.T, l *Line, dt float32) int {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if l.State() == Idle {
			return i
		}
		l.Update(dt)
	}
	t.Fatalf("line %q did not go idle within %d ticks", l.Name, maxTicks)
	return maxTicks
}

func TestPanelPredicatesAtBoundaries(t *testing.T) {
	p := NewPanel(mgl32.Vec3{}, 10)
	assert.True(t, p.IsClosed())
	assert.False(t, p.IsOpen())

	p.Current = mgl32.Vec3{0.01, 0, 0}
	assert.True(t, p.IsClosed(), "exactly epsilon counts as closed")

	p.Current = mgl32.Vec3{0.011, 0, 0}
	assert.False(t, p.IsClosed())

	p.Current = mgl32.Vec3{0, 0, 10}
	assert.True(t, p.IsOpen(), "exactly the opened distance counts as open")

	p.Current = mgl32.Vec3{0, 0, 9.99}
	assert.False(t, p.IsOpen())
}

func TestNewLineStartsIdleAndClosed(t *testing.T) {
	l := threeX(Forward)
	assert.Equal(t, Idle, l.State())
	for _, p := range l.Panels {
		assert.Equal(t, p.Closed, p.Current)
		assert.True(t, p.IsClosed())
	}
	var zero Line
	assert.Equal(t, Idle, zero.State())
}

func TestOpeningForwardMovesOnePanelAtATime(t *testing.T) {
	l := threeX(Forward)
	l.Open()

	// A travels alone until it satisfies IsOpen.
	for !l.Panels[0].IsOpen() {
		assert.Equal(t, l.Panels[1].Closed, l.Panels[1].Current, "B moved before A opened")
		assert.Equal(t, l.Panels[2].Closed, l.Panels[2].Current, "C moved before A opened")
		l.Update(0.5)
	}
	assert.Equal(t, float32(2), l.Panels[0].Distance())

	l.Update(0.5)
	assert.InDelta(t, 2.5, l.Panels[0].Distance(), 1e-6, "open panels in front keep moving")
	assert.InDelta(t, 0.5, l.Panels[1].Distance(), 1e-6)
	assert.Equal(t, l.Panels[2].Closed, l.Panels[2].Current)

	for !l.Panels[1].IsOpen() {
		assert.Equal(t, l.Panels[2].Closed, l.Panels[2].Current, "C moved before B opened")
		l.Update(0.5)
	}
	runUntilIdle(t, l, 0.5)

	// Earlier panels have telescoped further out.
	assert.InDelta(t, 6, l.Panels[0].Distance(), 1e-5)
	assert.InDelta(t, 4, l.Panels[1].Distance(), 1e-5)
	assert.InDelta(t, 2, l.Panels[2].Distance(), 1e-5)
}

func TestOpeningReverseStartsFromTheEnd(t *testing.T) {
	l := threeX(Reverse)
	l.Open()
	l.Update(0.5)

	assert.Equal(t, l.Panels[0].Closed, l.Panels[0].Current)
	assert.Equal(t, l.Panels[1].Closed, l.Panels[1].Current)
	assert.InDelta(t, 0.5, l.Panels[2].Distance(), 1e-6)

	for !l.Panels[2].IsOpen() {
		assert.Equal(t, l.Panels[1].Closed, l.Panels[1].Current)
		l.Update(0.5)
	}
	l.Update(0.5)
	assert.InDelta(t, 0.5, l.Panels[1].Distance(), 1e-6)
	assert.Equal(t, l.Panels[0].Closed, l.Panels[0].Current)
}

func TestAtMostOnePanelReachesTargetPerTick(t *testing.T) {
	for _, order := range []Order{Forward, Reverse} {
		t.Run(string(order), func(t *testing.T) {
			l := threeX(order)
			count := func(pred func(Panel) bool) int {
				n := 0
				for _, p := range l.Panels {
					if pred(p) {
						n++
					}
				}
				return n
			}
			isOpen := func(p Panel) bool { return p.IsOpen() }

			l.Open()
			for i := 0; i < maxTicks && l.State() != Idle; i++ {
				before := count(isOpen)
				l.Update(0.25)
				assert.LessOrEqual(t, count(isOpen)-before, 1)
			}
			require.Equal(t, Idle, l.State())
			require.Equal(t, 3, count(isOpen))
		})
	}
}

func TestCompletionFiresOncePerRun(t *testing.T) {
	l := threeX(Forward)
	var fired []State
	l.OnComplete(func(s State) { fired = append(fired, s) })

	l.Open()
	runUntilIdle(t, l, 0.5)
	require.Equal(t, []State{Opening}, fired)

	snapshot := append([]Panel(nil), l.Panels...)
	for i := 0; i < 20; i++ {
		l.Update(0.5)
	}
	assert.Equal(t, snapshot, l.Panels, "idle updates must not move panels")
	assert.Equal(t, []State{Opening}, fired, "idle updates must not re-fire")

	// Re-opening an already open line completes immediately without motion.
	l.Open()
	l.Update(0.5)
	assert.Equal(t, snapshot, l.Panels)
	assert.Equal(t, []State{Opening, Opening}, fired)
	assert.Equal(t, Idle, l.State())
}

func TestRoundTripReturnsToClosedPose(t *testing.T) {
	for _, order := range []Order{Forward, Reverse} {
		t.Run(string(order), func(t *testing.T) {
			const dt = 0.25
			l := NewLine("rt", mgl32.Vec3{0, 0, -2}, order, 5,
				mgl32.Vec3{75, 0, -17.5}, mgl32.Vec3{75, 0, -7.5})
			var fired []State
			l.OnComplete(func(s State) { fired = append(fired, s) })

			l.Open()
			runUntilIdle(t, l, dt)
			for _, p := range l.Panels {
				assert.True(t, p.IsOpen())
			}

			l.Close()
			runUntilIdle(t, l, dt)
			tolerance := dt * l.OpenDirection.Len()
			for i, p := range l.Panels {
				assert.LessOrEqual(t, p.Distance(), tolerance, "panel %d", i)
				assert.True(t, p.IsClosed(), "panel %d", i)
			}
			assert.Equal(t, []State{Opening, Closing}, fired)
		})
	}
}

func TestClosingRetractsEveryUnclosedPanel(t *testing.T) {
	l := NewLine("close", mgl32.Vec3{1, 0, 0}, Forward, 2,
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 5, 0})
	l.Panels[0].Current = mgl32.Vec3{4, 0, 0}
	l.Panels[1].Current = mgl32.Vec3{2, 5, 0}

	l.Close()
	l.Update(1)
	assert.InDelta(t, 3, l.Panels[0].Distance(), 1e-6)
	assert.InDelta(t, 1, l.Panels[1].Distance(), 1e-6)

	l.Update(1)
	assert.InDelta(t, 2, l.Panels[0].Distance(), 1e-6)
	assert.True(t, l.Panels[1].IsClosed())

	// The closed panel stays put while the other keeps retracting.
	l.Update(1)
	assert.InDelta(t, 1, l.Panels[0].Distance(), 1e-6)
	assert.Equal(t, l.Panels[1].Closed, l.Panels[1].Current)
	assert.Equal(t, Closing, l.State())

	l.Update(1)
	l.Update(1)
	assert.Equal(t, Idle, l.State())
}

func TestReversalKeepsProgress(t *testing.T) {
	const dt = 0.5
	l := threeX(Forward)
	l.Open()
	l.Update(dt)
	l.Update(dt)
	require.InDelta(t, 1, l.Panels[0].Distance(), 1e-6, "A at half its opened distance")

	l.Close()
	l.Update(dt)
	assert.InDelta(t, 1-dt*l.OpenDirection.Len(), l.Panels[0].Distance(), 1e-6)
	assert.Equal(t, Closing, l.State())

	l.Open()
	l.Update(dt)
	assert.InDelta(t, 1, l.Panels[0].Distance(), 1e-6)
}

func TestEmptyLineCompletesImmediately(t *testing.T) {
	for _, start := range []func(*Line){(*Line).Open, (*Line).Close} {
		l := NewLine("empty", mgl32.Vec3{0, 0, 1}, Forward, 10)
		var fired int
		l.OnComplete(func(State) { fired++ })

		start(l)
		l.Update(0.016)
		assert.Equal(t, Idle, l.State())
		assert.Equal(t, 1, fired)

		l.Update(0.016)
		assert.Equal(t, 1, fired)
	}
}

func TestZeroAndNegativeDeltaDoNotMovePanels(t *testing.T) {
	l := threeX(Forward)
	l.Open()
	l.Update(0)
	l.Update(-1)
	for _, p := range l.Panels {
		assert.Equal(t, p.Closed, p.Current)
	}
	assert.Equal(t, Opening, l.State())
}

func TestOpeningDoesNotClampOvershoot(t *testing.T) {
	l := NewLine("overshoot", mgl32.Vec3{0, 1, 0}, Forward, 1, mgl32.Vec3{})
	l.Open()
	l.Update(0.75)
	l.Update(0.75)
	assert.InDelta(t, 1.5, l.Panels[0].Distance(), 1e-6)
	l.Update(0.75)
	assert.Equal(t, Idle, l.State())
	assert.InDelta(t, 1.5, l.Panels[0].Distance(), 1e-6)
}

func TestProgress(t *testing.T) {
	l := threeX(Forward)
	assert.Equal(t, float32(0), l.Progress())
	l.Open()
	for !l.Panels[0].IsOpen() {
		l.Update(0.5)
	}
	assert.InDelta(t, 1.0/3.0, l.Progress(), 1e-6)
	l.Close()
	assert.InDelta(t, 2.0/3.0, l.Progress(), 1e-6)

	empty := NewLine("empty", mgl32.Vec3{}, Forward, 1)
	assert.Equal(t, float32(1), empty.Progress())
}
