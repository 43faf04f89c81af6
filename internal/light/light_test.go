package light

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddGetSwitch(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(Light{Name: "tunnel", Kind: Point, On: true}))
	require.NoError(t, r.Add(Light{Name: "emergency", Kind: Spot}))
	assert.ErrorIs(t, r.Add(Light{Name: "tunnel"}), ErrDuplicate)
	assert.Equal(t, 2, r.Len())

	require.NoError(t, r.SetOn("emergency", true))
	l, ok := r.Get("emergency")
	require.True(t, ok)
	assert.True(t, l.On)

	assert.ErrorIs(t, r.SetOn("missing", true), ErrNotFound)
	assert.ErrorIs(t, r.SetDirection("missing", mgl32.Vec3{}), ErrNotFound)
	_, ok = r.Get("missing")
	assert.False(t, ok)

	names := []string{}
	for _, l := range r.List() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"tunnel", "emergency"}, names)
}

func TestGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(Light{Name: "a"}))
	l, _ := r.Get("a")
	l.On = true
	got, _ := r.Get("a")
	assert.False(t, got.On)
}

func TestBeaconSweepsAroundVerticalAxis(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(Light{Name: "emergency", Kind: Spot, Position: mgl32.Vec3{55, 20, 0}}))
	b := NewBeacon("emergency")

	require.NoError(t, b.Sweep(r))
	l, _ := r.Get("emergency")
	want := float64(mgl32.DegToRad(10))
	assert.InDelta(t, math.Cos(want), l.Direction.X(), 1e-5)
	assert.InDelta(t, 0, l.Direction.Y(), 1e-6)
	assert.InDelta(t, math.Sin(want), l.Direction.Z(), 1e-5)
	assert.InDelta(t, 1, l.Direction.Len(), 1e-5)

	for i := 0; i < 35; i++ {
		require.NoError(t, b.Sweep(r))
	}
	assert.Less(t, b.Angle, float32(2*math.Pi)+1e-4)
	assert.InDelta(t, 1, math.Cos(float64(b.Angle)), 1e-4, "36 steps make a full turn")

	assert.ErrorIs(t, NewBeacon("nope").Sweep(r), ErrNotFound)
}
